package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var bucketRegion string

// bucketCmd is the parent command for bucket operations.
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Manage buckets",
}

var bucketListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List buckets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		list, err := s.svc.ListBuckets(cmd.Context())
		if err != nil {
			return err
		}
		for _, b := range list {
			fmt.Fprintln(cmd.OutOrStdout(), b.Name)
		}
		return nil
	},
}

var bucketExistsCmd = &cobra.Command{
	Use:   "exists <name>",
	Short: "Check whether a bucket exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		exists, err := s.svc.BucketExists(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), exists)
		return nil
	},
}

var bucketCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a bucket",
	Long: `Create a bucket. Without --region the backend picks its default region.
See "s3dropbox regions" for the known region identifiers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.svc.CreateBucket(cmd.Context(), args[0], bucketRegion); err != nil {
			return err
		}
		s.logger.Info("Bucket created", zap.String("bucket", args[0]))
		return nil
	},
}

var bucketRemoveCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete an empty bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		return s.svc.DeleteBucket(cmd.Context(), args[0])
	},
}

func init() {
	bucketCreateCmd.Flags().StringVar(&bucketRegion, "region", "", "Region to create the bucket in (backend default when empty)")

	bucketCmd.AddCommand(bucketListCmd, bucketExistsCmd, bucketCreateCmd, bucketRemoveCmd)
	RootCmd.AddCommand(bucketCmd)
}
