package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"deepsrt/fetcher/internal/config"
	"deepsrt/fetcher/internal/container"
)

func newRootCommand() *cobra.Command {
	var delayFlag int
	var verboseFlag bool

	rootCmd := &cobra.Command{
		Use:           "srtfetcher [csv-file]",
		Short:         "Fetch SRT subtitle data for a CSV of YouTube video IDs",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Environment variables may be supplied via a local .env file.
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if len(args) > 0 {
				cfg.Input.File = args[0]
			}
			if cmd.Flags().Changed("delay") {
				cfg.Fetch.Delay = delayFlag
			}
			if verboseFlag {
				cfg.Fetch.LogDetail = config.LogDetailVerbose
			}

			app, err := container.New(cfg)
			if err != nil {
				return err
			}

			return app.Run(context.Background())
		},
	}

	rootCmd.Flags().IntVar(&delayFlag, "delay", 1, "Delay between requests in seconds")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log raw request and response dumps")

	return rootCmd
}
