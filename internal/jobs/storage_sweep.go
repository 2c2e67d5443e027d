package jobs

import (
	"context"
	"time"

	"github.com/pawhaven/shelter-api/internal/config"
	"github.com/pawhaven/shelter-api/internal/repository"
	"github.com/pawhaven/shelter-api/internal/storage"
	"go.uber.org/zap"
)

// StorageSweep removes blobs that no longer have a photo record.
// Orphans appear when a delete succeeds in the database but the
// follow-up blob delete fails.
type StorageSweep struct {
	storage   storage.Storage
	photoRepo *repository.PhotoRepository
	timeout   time.Duration
	logger    *zap.Logger
}

func NewStorageSweep(fileStorage storage.Storage, photoRepo *repository.PhotoRepository, timeout time.Duration, logger *zap.Logger) *StorageSweep {
	return &StorageSweep{
		storage:   fileStorage,
		photoRepo: photoRepo,
		timeout:   timeout,
		logger:    logger,
	}
}

// Register adds the sweep to the scheduler when it is enabled in config.
func (j *StorageSweep) Register(scheduler *Scheduler, cfg *config.JobsConfig) error {
	if !cfg.StorageSweepEnabled {
		j.logger.Info("storage sweep job disabled")
		return nil
	}
	return scheduler.AddJob("storage-sweep", cfg.StorageSweepCron, j.Run)
}

// Run scans the cats prefix and deletes every blob without a matching row.
func (j *StorageSweep) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	paths, err := j.storage.List(ctx, "cats/")
	if err != nil {
		j.logger.Error("storage sweep failed to list blobs", zap.Error(err))
		return
	}

	var scanned, removed, failed int
	for _, path := range paths {
		scanned++

		exists, err := j.photoRepo.ExistsByStoragePath(ctx, path)
		if err != nil {
			j.logger.Error("storage sweep lookup failed",
				zap.String("path", path),
				zap.Error(err))
			failed++
			continue
		}
		if exists {
			continue
		}

		if err := j.storage.Delete(ctx, path); err != nil {
			j.logger.Error("storage sweep failed to delete orphan",
				zap.String("path", path),
				zap.Error(err))
			failed++
			continue
		}

		j.logger.Info("storage sweep removed orphaned blob",
			zap.String("path", path))
		removed++
	}

	j.logger.Info("storage sweep finished",
		zap.Int("scanned", scanned),
		zap.Int("removed", removed),
		zap.Int("failed", failed))
}
