package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"s3dropbox/core/utils"
	"s3dropbox/feature/journal"

	"github.com/spf13/cobra"
)

var (
	transfersBucket string
	transfersStatus string
	transfersLimit  int
)

// transfersCmd lists journaled transfers.
var transfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "List recent uploads and downloads from the journal",
	Long:  `Lists journaled transfers, newest first. Requires DATABASE_ENABLED=true.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if !s.repo.Enabled() {
			return fmt.Errorf("transfer journal is disabled: set DATABASE_ENABLED=true and configure the database")
		}

		records, err := s.repo.List(cmd.Context(), journal.Filter{
			Bucket: transfersBucket,
			Status: journal.Status(transfersStatus),
			Limit:  transfersLimit,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STARTED\tDIRECTION\tSTATUS\tSIZE\tOBJECT\tERROR")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s/%s\t%s\n",
				r.StartedAt.Local().Format(time.DateTime), r.Direction, r.Status,
				utils.HumanBytes(r.Bytes), r.Bucket, r.ObjectKey, r.Error)
		}
		return w.Flush()
	},
}

func init() {
	transfersCmd.Flags().StringVar(&transfersBucket, "bucket", "", "Only show transfers for this bucket")
	transfersCmd.Flags().StringVar(&transfersStatus, "status", "", "Only show completed or failed transfers")
	transfersCmd.Flags().IntVar(&transfersLimit, "limit", journal.DefaultLimit, "Maximum number of records")

	RootCmd.AddCommand(transfersCmd)
}
