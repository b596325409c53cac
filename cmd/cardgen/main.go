package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rptomey/silent-auction-card-generator/pkg/logger"
	"github.com/rptomey/silent-auction-card-generator/pkg/version"
)

type app struct {
	configPath string
	verbose    bool
	debug      bool
	log        *logger.Logger
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{
		log: logger.New(logger.WithPrefix("[cardgen] ")),
	}

	if err := a.rootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			a.log.Info("Interrupted")
			os.Exit(130)
		}
		a.log.Fatal("%v", err)
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cardgen",
		Short:         "Render printable silent-auction item cards",
		Long:          `cardgen draws each auction item's name, starting bid and a QR code for its auction URL onto a template image, and writes a manifest of the generated cards.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log.SetVerbose(a.verbose)
			if a.debug {
				a.log.SetLevel(logger.LevelTrace)
			}
			if a.verbose {
				a.log.Debug("Verbose logging enabled")
			}
		},
	}

	root.SetVersionTemplate(version.GetDetailedVersionInfo())
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yaml", "path to config file (.yaml or .toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug mode with trace logging")

	root.AddCommand(a.generateCommand())
	root.AddCommand(a.templatesCommand())
	root.AddCommand(a.sheetCommand())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(version.GetDetailedVersionInfo())
		},
	})

	return root
}
