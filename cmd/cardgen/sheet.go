package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rptomey/silent-auction-card-generator/internal/batch"
	"github.com/rptomey/silent-auction-card-generator/internal/pdf"
)

func (a *app) sheetCommand() *cobra.Command {
	opts := &generateOptions{}
	var out string

	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Bundle the cards listed in the manifest into one PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(opts)
			if err != nil {
				return err
			}

			entries, err := batch.ReadManifest(batch.ManifestPath(cfg.OutputDir, cfg.ManifestFile))
			if err != nil {
				return err
			}

			paths := make([]string, 0, len(entries))
			for _, e := range entries {
				paths = append(paths, filepath.Join(cfg.OutputDir, e.Filename))
			}

			_, err = pdf.NewSheetBuilder(a.log).Build(cmd.Context(), paths, out)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory holding the generated cards and manifest (overrides config)")
	cmd.Flags().StringVar(&out, "out", "cards.pdf", "PDF file to write")
	return cmd
}
