// Package testutil builds throwaway template, font and input trees for tests.
package testutil

import (
	"encoding/csv"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/rptomey/silent-auction-card-generator/internal/config"
	"github.com/rptomey/silent-auction-card-generator/pkg/models"
)

const (
	RegularFont = "Regular.ttf"
	BoldFont    = "Bold.ttf"

	TemplateA = "template_a.png"
	// TemplateB has a fully transparent background and no item box.
	TemplateB = "template_b.png"

	TemplateWidth  = 1300
	TemplateHeight = 900
)

// ConfigYAML lays out both fixture templates.
const ConfigYAML = `
templates_dir: %s
fonts_dir: %s
output_dir: %s
templates:
  template_a.png:
    item: {font: Bold.ttf, size: 48, min_size: 24, x: 50, y: 600, width: 400, height: 100}
    bid: {font: Regular.ttf, size: 40, x: 50, y: 700}
    qr: {x: 950, y: 550}
  template_b.png:
    item: {font: Regular.ttf, size: 48, x: 75, y: 550}
    bid: {size: 40, x: 75, y: 650}
    qr: {x: 900, y: 500}
`

type Fixture struct {
	Root         string
	TemplatesDir string
	FontsDir     string
	OutputDir    string
}

func NewFixture() (*Fixture, error) {
	root, err := os.MkdirTemp("", "cardgen-fixture-*")
	if err != nil {
		return nil, err
	}

	f := &Fixture{
		Root:         root,
		TemplatesDir: filepath.Join(root, "templates"),
		FontsDir:     filepath.Join(root, "fonts"),
		OutputDir:    filepath.Join(root, "generated_cards"),
	}

	for _, dir := range []string{f.TemplatesDir, f.FontsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	fonts := map[string][]byte{RegularFont: goregular.TTF, BoldFont: gobold.TTF}
	for name, data := range fonts {
		if err := os.WriteFile(filepath.Join(f.FontsDir, name), data, 0644); err != nil {
			return nil, err
		}
	}

	opaque := imaging.New(TemplateWidth, TemplateHeight, color.NRGBA{R: 0xf4, G: 0xe8, B: 0xc1, A: 0xff})
	if err := imaging.Save(opaque, filepath.Join(f.TemplatesDir, TemplateA)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", TemplateA, err)
	}
	transparent := imaging.New(TemplateWidth, TemplateHeight, color.NRGBA{})
	if err := imaging.Save(transparent, filepath.Join(f.TemplatesDir, TemplateB)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", TemplateB, err)
	}

	return f, nil
}

func (f *Fixture) Cleanup() error {
	return os.RemoveAll(f.Root)
}

// WriteConfig writes the fixture config as YAML and returns its path.
func (f *Fixture) WriteConfig() (string, error) {
	path := filepath.Join(f.Root, "config.yaml")
	content := fmt.Sprintf(ConfigYAML, f.TemplatesDir, f.FontsDir, f.OutputDir)
	return path, os.WriteFile(path, []byte(content), 0644)
}

func (f *Fixture) LoadConfig() (*config.Config, error) {
	path, err := f.WriteConfig()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// WriteItems writes records as an input CSV and returns its path.
func (f *Fixture) WriteItems(records []models.ItemRecord) (string, error) {
	path := filepath.Join(f.Root, "auction_items.csv")
	fp, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer fp.Close()

	w := csv.NewWriter(fp)
	if err := w.Write([]string{"ItemName", "StartingBid", "AuctionURL", "TemplateFile"}); err != nil {
		return "", err
	}
	for _, r := range records {
		if err := w.Write([]string{r.Name, r.StartingBid, r.AuctionURL, r.TemplateID}); err != nil {
			return "", err
		}
	}
	w.Flush()
	return path, w.Error()
}
