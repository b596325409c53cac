package utils

import (
	"os"
	"path/filepath"

	"github.com/rptomey/silent-auction-card-generator/pkg/errors"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// ResolveResource joins ref onto baseDir and checks that a regular file exists
// there. kind names the resource in the error ("template image", "font").
func ResolveResource(baseDir, ref, kind string) (string, error) {
	if ref == "" {
		return "", errors.New(errors.ErrCodeMissingResource, "%s reference is empty", kind)
	}

	path := ref
	if !filepath.IsAbs(ref) {
		path = filepath.Join(baseDir, ref)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMissingResource, err, "%s %s", kind, path)
	}
	if info.IsDir() {
		return "", errors.New(errors.ErrCodeMissingResource, "%s %s is a directory", kind, path)
	}

	return path, nil
}
