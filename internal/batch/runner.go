// Package batch renders every input row and records the successes in a
// manifest written once at the end of the run.
package batch

import (
	"context"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rptomey/silent-auction-card-generator/internal/card"
	"github.com/rptomey/silent-auction-card-generator/pkg/logger"
	"github.com/rptomey/silent-auction-card-generator/pkg/models"
)

// Renderer renders one item. *card.Composer is the production implementation.
type Renderer interface {
	Render(ctx context.Context, item models.ItemRecord) card.Result
}

type Runner struct {
	renderer     Renderer
	manifestPath string
	workers      int
	logger       *logger.Logger
}

// NewRunner returns a runner that writes the manifest to manifestPath.
// workers <= 1 renders sequentially.
func NewRunner(renderer Renderer, manifestPath string, workers int, logger *logger.Logger) *Runner {
	return &Runner{
		renderer:     renderer,
		manifestPath: manifestPath,
		workers:      max(workers, 1),
		logger:       logger,
	}
}

// ManifestPath joins the manifest file name onto the output directory.
func ManifestPath(outputDir, manifestFile string) string {
	if filepath.IsAbs(manifestFile) {
		return manifestFile
	}
	return filepath.Join(outputDir, manifestFile)
}

// Run renders records and writes the manifest of those that succeeded, in
// input order. Item failures are recorded in the report and never stop the
// run. On cancellation the finished cards are still written and ctx.Err()
// is returned with the report.
func (r *Runner) Run(ctx context.Context, records []models.ItemRecord) (*Report, error) {
	report := &Report{
		StartTime: time.Now(),
		Rows:      len(records),
	}

	r.logger.Info("Rendering %d item(s) with %d worker(s)", len(records), r.workers)
	results := r.renderAll(ctx, records)

	for _, res := range results {
		switch {
		case res == nil:
			report.NotAttempted++
		case res.OK():
			report.Cards = append(report.Cards, *res.Card)
			if res.Card.Overflow {
				report.Overflowed++
			}
		default:
			report.Failures = append(report.Failures, Failure{Item: res.Item, Err: res.Err})
		}
	}

	if err := WriteManifest(r.manifestPath, report.Entries()); err != nil {
		report.EndTime = time.Now()
		return report, err
	}
	report.ManifestPath = r.manifestPath
	report.EndTime = time.Now()
	r.logger.Debug("Wrote %d manifest entries to %s", report.Rendered(), r.manifestPath)

	return report, ctx.Err()
}

// renderAll returns one result per record, indexed like records. Entries are
// nil for records that were never started because ctx was cancelled.
func (r *Runner) renderAll(ctx context.Context, records []models.ItemRecord) []*card.Result {
	results := make([]*card.Result, len(records))

	if r.workers == 1 {
		for i, rec := range records {
			if ctx.Err() != nil {
				break
			}
			res := r.renderer.Render(ctx, rec)
			results[i] = &res
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, rec := range records {
		if ctx.Err() != nil {
			break
		}
		i, rec := i, rec
		g.Go(func() error {
			res := r.renderer.Render(ctx, rec)
			results[i] = &res
			return nil
		})
	}
	_ = g.Wait()

	return results
}
