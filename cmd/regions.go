package cmd

import (
	"fmt"

	"s3dropbox/feature/buckets"

	"github.com/spf13/cobra"
)

// regionsCmd lists the regions a bucket can be created in.
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regions a bucket can be created in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range buckets.Regions() {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(regionsCmd)
}
