package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rptomey/silent-auction-card-generator/internal/batch"
	"github.com/rptomey/silent-auction-card-generator/internal/card"
	"github.com/rptomey/silent-auction-card-generator/internal/config"
	"github.com/rptomey/silent-auction-card-generator/internal/items"
	"github.com/rptomey/silent-auction-card-generator/internal/pdf"
)

type generateOptions struct {
	input        string
	outputDir    string
	templatesDir string
	fontsDir     string
	workers      int
	pdfPath      string
}

func (a *app) generateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render one card per input row and write the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "auction_items.csv", "CSV file with ItemName, StartingBid, AuctionURL, TemplateFile columns")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory to save generated cards (overrides config)")
	cmd.Flags().StringVar(&opts.templatesDir, "templates-dir", "", "directory containing template images (overrides config)")
	cmd.Flags().StringVar(&opts.fontsDir, "fonts-dir", "", "directory containing font files (overrides config)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 1, "number of cards to render concurrently")
	cmd.Flags().StringVar(&opts.pdfPath, "pdf", "", "also bundle the generated cards into this PDF file")

	return cmd
}

func (a *app) generate(cmd *cobra.Command, opts *generateOptions) error {
	ctx := cmd.Context()

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	records, err := items.LoadFile(opts.input)
	if err != nil {
		return err
	}
	a.log.Info("Found %d item(s) in %s", len(records), opts.input)

	composer, err := card.NewComposer(cfg, cfg.OutputDir, a.log)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(composer, batch.ManifestPath(cfg.OutputDir, cfg.ManifestFile), opts.workers, a.log)
	report, err := runner.Run(ctx, records)
	if report != nil {
		report.Print(a.log)
	}
	if err != nil {
		return err
	}

	if opts.pdfPath != "" && report.Rendered() > 0 {
		paths := make([]string, 0, report.Rendered())
		for _, c := range report.Cards {
			paths = append(paths, filepath.Join(cfg.OutputDir, c.Filename))
		}
		if _, err := pdf.NewSheetBuilder(a.log).Build(ctx, paths, opts.pdfPath); err != nil {
			a.log.Error("%v", err)
		}
	}

	a.log.Info("Done! All cards saved in '%s' folder.", cfg.OutputDir)
	return nil
}

func (a *app) loadConfig(opts *generateOptions) (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}

	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
	if opts.templatesDir != "" {
		cfg.TemplatesDir = opts.templatesDir
	}
	if opts.fontsDir != "" {
		cfg.FontsDir = opts.fontsDir
	}

	a.log.Debug("Templates: %s, fonts: %s, output: %s", cfg.TemplatesDir, cfg.FontsDir, cfg.OutputDir)
	return cfg, nil
}
