// Package pdf bundles rendered card images into a printable PDF.
package pdf

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/rptomey/silent-auction-card-generator/pkg/logger"
)

var disableConfigDir sync.Once

type SheetBuilder struct {
	logger *logger.Logger
}

func NewSheetBuilder(logger *logger.Logger) *SheetBuilder {
	disableConfigDir.Do(api.DisableConfigDir)
	return &SheetBuilder{logger: logger}
}

// Build writes one page per image, in order, to outFile. An existing outFile
// is replaced rather than appended to.
func (b *SheetBuilder) Build(ctx context.Context, imagePaths []string, outFile string) (int, error) {
	if len(imagePaths) == 0 {
		return 0, fmt.Errorf("no card images to put on the print sheet")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := os.Remove(outFile); err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("failed to replace %s: %w", outFile, err)
	}

	b.logger.Debug("Importing %d card image(s) into %s", len(imagePaths), outFile)
	if err := api.ImportImagesFile(imagePaths, outFile, pdfcpu.DefaultImportConfig(), nil); err != nil {
		return 0, fmt.Errorf("failed to build print sheet: %w", err)
	}

	pages, err := PageCount(outFile)
	if err != nil {
		return 0, err
	}
	b.logger.Info("Wrote print sheet %s (%d pages)", outFile, pages)
	return pages, nil
}

func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages of %s: %w", path, err)
	}
	return n, nil
}
