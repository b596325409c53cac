package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rptomey/silent-auction-card-generator/pkg/logger"
)

var templateExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// TemplateFile is an image found under the templates directory. ID is the
// slash-separated path relative to that directory, as used in the input table.
type TemplateFile struct {
	ID           string
	AbsolutePath string
}

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{
		logger: logger,
	}
}

func (s *DirectoryScanner) FindTemplates(ctx context.Context, dir string) ([]TemplateFile, error) {
	var templates []TemplateFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.logger.Trace("Scanning directory: %s", path)
			return nil
		}

		if !templateExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}

		s.logger.Debug("Found template: %s", relPath)
		templates = append(templates, TemplateFile{
			ID:           filepath.ToSlash(relPath),
			AbsolutePath: absPath,
		})
		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("no template images found in %s or its subdirectories", dir)
	}

	return templates, nil
}

// Coverage relates template images on disk to configured layouts.
type Coverage struct {
	Ready        []string // image and layout both present
	Unconfigured []string // image without a layout
	Missing      []string // layout without an image
}

func Compare(found []TemplateFile, configured []string) Coverage {
	onDisk := map[string]bool{}
	for _, t := range found {
		onDisk[t.ID] = true
	}
	hasLayout := map[string]bool{}
	for _, id := range configured {
		hasLayout[id] = true
	}

	var c Coverage
	for id := range onDisk {
		if hasLayout[id] {
			c.Ready = append(c.Ready, id)
		} else {
			c.Unconfigured = append(c.Unconfigured, id)
		}
	}
	for id := range hasLayout {
		if !onDisk[id] {
			c.Missing = append(c.Missing, id)
		}
	}

	sort.Strings(c.Ready)
	sort.Strings(c.Unconfigured)
	sort.Strings(c.Missing)
	return c
}
