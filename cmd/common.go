package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"s3dropbox/core/config"
	"s3dropbox/core/database"
	"s3dropbox/core/logger"
	"s3dropbox/core/storage"
	"s3dropbox/core/utils"
	"s3dropbox/dropbox"
	"s3dropbox/feature/journal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// session bundles what a command needs to talk to storage.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	repo   *journal.Repository
	svc    *dropbox.Service
}

// openSession loads configuration and builds the storage facade. The journal is attached when
// the database is enabled and reachable; otherwise transfers simply are not recorded.
func openSession() (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}

	var db *gorm.DB
	if cfg.Database.Enabled {
		if conn, err := database.Connect(cfg.Database); err != nil {
			l.Warn("Journal database unavailable, transfers will not be recorded", zap.Error(err))
		} else {
			db = conn
		}
	}
	repo := journal.NewRepository(db, l)
	if err := repo.Migrate(); err != nil {
		l.Warn("Journal migration failed, transfers will not be recorded", zap.Error(err))
		repo = journal.NewRepository(nil, l)
	}

	return &session{
		cfg:    cfg,
		logger: l,
		client: client,
		repo:   repo,
		svc:    dropbox.New(client, cfg.Transfer, repo, l),
	}, nil
}

func (s *session) Close() {
	s.svc.Shutdown()
	_ = s.logger.Sync()
}

// bucketFrom returns the bucket flag value, falling back to storage.bucket.
func (s *session) bucketFrom(cmd *cobra.Command) (string, error) {
	bucket, _ := cmd.Flags().GetString("bucket")
	if bucket == "" {
		bucket = s.cfg.Storage.Bucket
	}
	if bucket == "" {
		return "", fmt.Errorf("no bucket given: pass --bucket or set STORAGE_BUCKET")
	}
	return bucket, nil
}

// signalContext is cancelled on SIGINT/SIGTERM so blocking transfers are interrupted.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// progressPrinter writes a single updating progress line to stderr, at most once per percent.
func progressPrinter(label string) func(current, total int64) {
	last := -1
	return func(current, total int64) {
		pct := int(utils.Percent(current, total))
		if total == 0 {
			pct = 100
		}
		if pct == last && current != total {
			return
		}
		last = pct
		fmt.Fprintf(os.Stderr, "\r%s %s / %s (%d%%)", label, utils.HumanBytes(current), utils.HumanBytes(total), pct)
		if current == total {
			fmt.Fprintln(os.Stderr)
		}
	}
}
