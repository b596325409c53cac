package batch

import (
	"time"

	"github.com/rptomey/silent-auction-card-generator/pkg/logger"
	"github.com/rptomey/silent-auction-card-generator/pkg/models"
)

type Failure struct {
	Item models.ItemRecord
	Err  error
}

// Report summarises one batch run. Cards are in input order.
type Report struct {
	StartTime    time.Time
	EndTime      time.Time
	Rows         int
	Cards        []models.RenderedCard
	Failures     []Failure
	Overflowed   int
	NotAttempted int
	ManifestPath string
}

func (r *Report) Rendered() int {
	return len(r.Cards)
}

func (r *Report) Entries() []models.ManifestEntry {
	entries := make([]models.ManifestEntry, 0, len(r.Cards))
	for _, c := range r.Cards {
		entries = append(entries, c.ManifestEntry())
	}
	return entries
}

func (r *Report) Print(log *logger.Logger) {
	log.Info("Processing complete:")
	log.Info("- Rows read: %d", r.Rows)
	log.Info("- Cards generated: %d", r.Rendered())
	log.Info("- Items skipped: %d", len(r.Failures))
	if r.Overflowed > 0 {
		log.Info("- Cards with overflowing text: %d", r.Overflowed)
	}
	if r.NotAttempted > 0 {
		log.Info("- Items not attempted (cancelled): %d", r.NotAttempted)
	}
	for _, f := range r.Failures {
		log.Info("  row %d %q: %v", f.Item.Row, f.Item.Name, f.Err)
	}
	if r.ManifestPath != "" {
		log.Info("- Manifest: %s", r.ManifestPath)
	}
	log.Info("- Took %s", r.EndTime.Sub(r.StartTime).Round(time.Millisecond))
}
