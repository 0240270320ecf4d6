package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hitsdeck/internal/build"
	"hitsdeck/internal/config"
	"hitsdeck/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "hitsdeck",
		Short:         "Build printable guess-the-year music card decks",
		Long: `hitsdeck turns a directory of tagged audio tracks into a printable
card deck: each track becomes a short playback clip plus a double-sided
card carrying a QR code on one face and the year, artist, and title on
the other. Pages are rendered as SVG and combined into a single PDF.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger.Info("starting build", "config", path)

			result, err := build.Run(cmd.Context(), cfg, logger, build.Options{
				Stdout: cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Pages == 0 {
				fmt.Fprintln(out, "No tracks found; nothing to print.")
				return nil
			}
			fmt.Fprintf(out, "Built %d cards on %d pages: %s\n", result.Tracks, result.Pages, result.PDFPath)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newConfigCommand(&configFlag))
	rootCmd.AddCommand(newDepsCommand(&configFlag))

	return rootCmd
}
