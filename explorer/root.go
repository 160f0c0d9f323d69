package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bikeshare/dataset"
	"bikeshare/explorer/config"
	"bikeshare/shell"
)

var Version = "dev"

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bikeshare trip data",
		Long:          "bikeshare asks for a city, a month and a day of week, and shows statistics about the matching trips of Chicago, New York City or Washington.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			explorerConfig, err := config.LoadConfig("")
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			if err := InitLogger(explorerConfig.LogLevel); err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}
			log.Debugf("[component: explorer][status: OK] config loaded: %+v", explorerConfig)

			loader := dataset.NewLoader(explorerConfig.GetLoaderConfig())
			sh := shell.NewShell(cmd.InOrStdin(), cmd.OutOrStdout(), loader, explorerConfig.PageSize)
			return sh.Run(cmd.Context())
		},
	}

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("bikeshare %s\n", Version))

	return root
}
