package main

import (
	"github.com/spf13/cobra"

	"github.com/rptomey/silent-auction-card-generator/internal/scanner"
)

func (a *app) templatesCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List template images and whether each has a layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(opts)
			if err != nil {
				return err
			}

			a.log.Info("Scanning directory: %s", cfg.TemplatesDir)
			found, err := scanner.New(a.log).FindTemplates(cmd.Context(), cfg.TemplatesDir)
			if err != nil {
				return err
			}

			coverage := scanner.Compare(found, cfg.TemplateIDs())
			for _, id := range coverage.Ready {
				a.log.Info("ready:        %s", id)
			}
			for _, id := range coverage.Unconfigured {
				a.log.Warn("no layout:    %s", id)
			}
			for _, id := range coverage.Missing {
				a.log.Warn("no image:     %s", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.templatesDir, "templates-dir", "", "directory containing template images (overrides config)")
	return cmd
}
