package cmd

import (
	"fmt"
	"os"

	"s3dropbox/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "s3dropbox",
	Short: "S3 Dropbox storage client",
	Long: `s3dropbox is a client for S3-compatible object storage.
It manages buckets, lists and transfers objects with progress, issues presigned URLs
and cleans up abandoned multipart uploads, from the command line or over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives readable ISO8601 timestamps for CLI users.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
