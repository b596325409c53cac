package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rptomey/silent-auction-card-generator/pkg/errors"
)

const (
	DefaultTemplatesDir = "templates"
	DefaultFontsDir     = "fonts"
	DefaultOutputDir    = "generated_cards"
	DefaultManifestFile = "manifest.json"
	DefaultQRSize       = 300
	DefaultLineSpacing  = 1.0
	DefaultTextColor    = "#000000"
	DefaultBidLabel     = "Starting Bid:"
)

type Config struct {
	TemplatesDir string                  `yaml:"templates_dir" toml:"templates_dir"`
	FontsDir     string                  `yaml:"fonts_dir" toml:"fonts_dir"`
	OutputDir    string                  `yaml:"output_dir" toml:"output_dir"`
	ManifestFile string                  `yaml:"manifest_file" toml:"manifest_file"`
	QRSize       int                     `yaml:"qr_size" toml:"qr_size"`
	LineSpacing  float64                 `yaml:"line_spacing" toml:"line_spacing"`
	TextColor    string                  `yaml:"text_color" toml:"text_color"`
	BidLabel     string                  `yaml:"bid_label" toml:"bid_label"`
	Templates    map[string]TemplateSpec `yaml:"templates" toml:"templates"`
}

// TemplateSpec is the layout block for one template as written in the file.
type TemplateSpec struct {
	Item TextBlock `yaml:"item" toml:"item"`
	Bid  TextBlock `yaml:"bid" toml:"bid"`
	QR   QRBlock   `yaml:"qr" toml:"qr"`
}

type TextBlock struct {
	Font    string `yaml:"font" toml:"font"`
	Size    int    `yaml:"size" toml:"size"`
	MinSize int    `yaml:"min_size" toml:"min_size"`
	X       int    `yaml:"x" toml:"x"`
	Y       int    `yaml:"y" toml:"y"`
	Width   int    `yaml:"width" toml:"width"`
	Height  int    `yaml:"height" toml:"height"`
}

type QRBlock struct {
	X    int `yaml:"x" toml:"x"`
	Y    int `yaml:"y" toml:"y"`
	Size int `yaml:"size" toml:"size"`
}

// Load reads a YAML config, or TOML when path ends in .toml, and fills defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMissingResource, err, "config file %s", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing %s", path)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.TemplatesDir == "" {
		c.TemplatesDir = DefaultTemplatesDir
	}
	if c.FontsDir == "" {
		c.FontsDir = DefaultFontsDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.ManifestFile == "" {
		c.ManifestFile = DefaultManifestFile
	}
	if c.QRSize <= 0 {
		c.QRSize = DefaultQRSize
	}
	if c.LineSpacing <= 0 {
		c.LineSpacing = DefaultLineSpacing
	}
	if c.TextColor == "" {
		c.TextColor = DefaultTextColor
	}
	if c.BidLabel == "" {
		c.BidLabel = DefaultBidLabel
	}
	if c.Templates == nil {
		c.Templates = map[string]TemplateSpec{}
	}
}

// TemplateIDs returns the configured template identifiers.
func (c *Config) TemplateIDs() []string {
	ids := make([]string, 0, len(c.Templates))
	for id := range c.Templates {
		ids = append(ids, id)
	}
	return ids
}
