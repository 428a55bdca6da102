package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"s3dropbox/core/utils"
	"s3dropbox/feature/cleanup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cleanupDryRun    bool
	cleanupYes       bool
	cleanupOlderThan time.Duration
)

// cleanupCmd aborts abandoned multipart uploads.
var cleanupCmd = &cobra.Command{
	Use:   "cleanup [bucket]",
	Short: "Abort abandoned multipart uploads",
	Long: `Find multipart uploads that were started but never completed and abort them,
freeing the parts they left in the bucket.

Examples:
  # Report only
  s3dropbox cleanup media --dry-run

  # Abort uploads older than a day (with interactive confirmation)
  s3dropbox cleanup media --older-than 24h

  # Abort everything started before now, non-interactive
  s3dropbox cleanup media --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCleanup,
}

func init() {
	cleanupCmd.Flags().BoolVar(&cleanupDryRun, "dry-run", false, "Report the plan without aborting anything")
	cleanupCmd.Flags().BoolVar(&cleanupYes, "yes", false, "Auto-confirm (non-interactive)")
	cleanupCmd.Flags().DurationVar(&cleanupOlderThan, "older-than", 0, "Only abort uploads started at least this long ago")
	cleanupCmd.Flags().StringP("bucket", "b", "", "Bucket name (defaults to STORAGE_BUCKET)")

	RootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		_ = cmd.Flags().Set("bucket", args[0])
	}
	bucket, err := s.bucketFrom(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	svc := s.svc.Cleanup()
	plan, err := svc.Plan(ctx, bucket, time.Now().Add(-cleanupOlderThan))
	if err != nil {
		return fmt.Errorf("failed to plan cleanup: %w", err)
	}
	printCleanupReport(s.logger, plan)

	if len(plan.Uploads) == 0 {
		s.logger.Info("No abandoned uploads found.")
		return nil
	}
	if cleanupDryRun {
		s.logger.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if !confirmDestructiveAction() {
		s.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	aborted, err := svc.Apply(ctx, plan, cleanup.Options{Confirmed: true})
	if err != nil {
		return fmt.Errorf("failed to apply cleanup after %d aborts: %w", aborted, err)
	}
	s.logger.Info("Aborted abandoned uploads", zap.Int("count", aborted))
	return nil
}

// printCleanupReport logs the plan, with a sample of the uploads it would abort.
func printCleanupReport(l *zap.Logger, plan *cleanup.Plan) {
	l.Info("Cleanup plan",
		zap.String("bucket", plan.Bucket),
		zap.Time("cutoff", plan.Cutoff),
		zap.Int("uploads", len(plan.Uploads)),
		zap.String("stored", utils.HumanBytes(plan.Bytes())),
	)

	maxShow := min(5, len(plan.Uploads))
	for _, u := range plan.Uploads[:maxShow] {
		l.Info("Abandoned upload",
			zap.String("key", u.Key),
			zap.String("upload_id", u.UploadID),
			zap.Time("initiated", u.Initiated),
		)
	}
	if len(plan.Uploads) > maxShow {
		l.Info("Additional uploads not shown", zap.Int("count", len(plan.Uploads)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if cleanupYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
