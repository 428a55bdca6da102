package cmd

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"
	"time"

	"s3dropbox/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	objectExpiry time.Duration
	objectQuiet  bool
)

// objectCmd is the parent command for object operations.
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "List, transfer and delete objects",
	Long: `Object operations. The bucket comes from --bucket or, when omitted, from STORAGE_BUCKET.

Examples:
  s3dropbox object ls -b media
  s3dropbox object put ./clip.mp4 videos/clip.mp4 -b media
  s3dropbox object get videos/clip.mp4 ./copy.mp4 -b media
  s3dropbox object url videos/clip.mp4 --expires 2h -b media`,
}

var objectListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all objects, sorted by key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		bucket, err := s.bucketFrom(cmd)
		if err != nil {
			return err
		}
		list, err := s.svc.ListObjects(cmd.Context(), bucket)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, o := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\n", o.LastModified.Format(time.DateTime), utils.HumanBytes(o.Size), o.Key)
		}
		return w.Flush()
	},
}

var objectExistsCmd = &cobra.Command{
	Use:   "exists <key>",
	Short: "Check whether an object with exactly this key exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		bucket, err := s.bucketFrom(cmd)
		if err != nil {
			return err
		}
		exists, err := s.svc.ObjectExists(cmd.Context(), bucket, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), exists)
		return nil
	},
}

var objectRemoveCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		bucket, err := s.bucketFrom(cmd)
		if err != nil {
			return err
		}
		return s.svc.DeleteObject(cmd.Context(), bucket, args[0])
	},
}

var objectURLCmd = &cobra.Command{
	Use:   "url <key>",
	Short: "Print a presigned GET URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		bucket, err := s.bucketFrom(cmd)
		if err != nil {
			return err
		}
		u, err := s.svc.PresignedURL(cmd.Context(), bucket, args[0], time.Now().Add(objectExpiry))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

var objectPutCmd = &cobra.Command{
	Use:   "put <file> [key]",
	Short: "Upload a file (key defaults to the file name)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		bucket, err := s.bucketFrom(cmd)
		if err != nil {
			return err
		}
		path := args[0]
		key := filepath.Base(path)
		if len(args) == 2 {
			key = args[1]
		}

		ctx, cancel := signalContext()
		defer cancel()

		var fn func(int64, int64)
		if !objectQuiet {
			fn = progressPrinter("upload " + key)
		}
		if err := s.svc.Upload(ctx, bucket, key, path, fn); err != nil {
			return err
		}
		s.logger.Info("Uploaded", zap.String("bucket", bucket), zap.String("key", key))
		return nil
	},
}

var objectGetCmd = &cobra.Command{
	Use:   "get <key> [file]",
	Short: "Download an object (file defaults to the key's base name)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		bucket, err := s.bucketFrom(cmd)
		if err != nil {
			return err
		}
		key := args[0]
		path := filepath.Base(key)
		if len(args) == 2 {
			path = args[1]
		}

		ctx, cancel := signalContext()
		defer cancel()

		var fn func(int64, int64)
		if !objectQuiet {
			fn = progressPrinter("download " + key)
		}
		if err := s.svc.Download(ctx, bucket, key, path, fn); err != nil {
			return err
		}
		s.logger.Info("Downloaded", zap.String("bucket", bucket), zap.String("key", key), zap.String("path", path))
		return nil
	},
}

func init() {
	objectCmd.PersistentFlags().StringP("bucket", "b", "", "Bucket name (defaults to STORAGE_BUCKET)")
	objectURLCmd.Flags().DurationVar(&objectExpiry, "expires", time.Hour, "How long the URL stays valid")
	objectPutCmd.Flags().BoolVarP(&objectQuiet, "quiet", "q", false, "Do not print progress")
	objectGetCmd.Flags().BoolVarP(&objectQuiet, "quiet", "q", false, "Do not print progress")

	objectCmd.AddCommand(objectListCmd, objectExistsCmd, objectRemoveCmd, objectURLCmd, objectPutCmd, objectGetCmd)
	RootCmd.AddCommand(objectCmd)
}
