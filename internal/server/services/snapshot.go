package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/registerface/internal/common"
	"github.com/dmitrijs2005/registerface/internal/server/config"
	"github.com/dmitrijs2005/registerface/internal/server/models"
	"github.com/dmitrijs2005/registerface/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/registerface/internal/server/storage"
	"github.com/google/uuid"
)

// ObjectStorage presigns snapshot transfers. *storage.S3Storage satisfies it.
type ObjectStorage interface {
	PresignPut(ctx context.Context, key string, ttl time.Duration) (string, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// SnapshotService hands out presigned URLs for face snapshot JPEGs and
// tracks their upload state.
type SnapshotService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	storage     ObjectStorage
	urlValidity time.Duration
	now         func() time.Time
	newID       func() string
}

func NewSnapshotService(db *sql.DB, m repomanager.RepositoryManager, st ObjectStorage, cfg *config.Config) *SnapshotService {
	validity := cfg.SnapshotURLValidity
	if validity <= 0 {
		validity = 15 * time.Minute
	}
	return &SnapshotService{
		db:          db,
		repomanager: m,
		storage:     st,
		urlValidity: validity,
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
}

// RequestUpload registers a pending snapshot and returns where to PUT it.
func (s *SnapshotService) RequestUpload(ctx context.Context, userID string, kind models.SnapshotKind) (models.SnapshotUpload, error) {
	if !kind.Valid() {
		return models.SnapshotUpload{}, fmt.Errorf("%w: unknown snapshot kind %q", common.ErrorValidation, kind)
	}

	now := s.now().UTC()
	id := s.newID()
	key := storage.StorageKey(userID, kind, now, id)

	url, err := s.storage.PresignPut(ctx, key, s.urlValidity)
	if err != nil {
		return models.SnapshotUpload{}, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	snap := models.Snapshot{
		ID:         id,
		UserID:     userID,
		Kind:       kind,
		StorageKey: key,
		Status:     models.SnapshotPending,
		CreatedAt:  now,
	}
	if err := s.repomanager.Snapshots(s.db).Create(ctx, snap); err != nil {
		return models.SnapshotUpload{}, err
	}
	return models.SnapshotUpload{ID: id, URL: url}, nil
}

// ConfirmUpload marks the snapshot as uploaded once its object is present in
// storage. A missing object yields common.ErrorNotFound and leaves the
// snapshot pending.
func (s *SnapshotService) ConfirmUpload(ctx context.Context, userID, snapshotID string) error {
	if _, err := uuid.Parse(snapshotID); err != nil {
		return fmt.Errorf("%w: bad snapshot id", common.ErrorValidation)
	}
	repo := s.repomanager.Snapshots(s.db)
	snap, err := repo.Get(ctx, snapshotID, userID)
	if err != nil {
		return err
	}
	ok, err := s.storage.Exists(ctx, snap.StorageKey)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	if !ok {
		return fmt.Errorf("%w: snapshot %s has not been uploaded", common.ErrorNotFound, snapshotID)
	}
	return repo.MarkUploaded(ctx, snapshotID, userID)
}

// DownloadURL presigns a GET for the newest uploaded snapshot of kind.
func (s *SnapshotService) DownloadURL(ctx context.Context, userID string, kind models.SnapshotKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown snapshot kind %q", common.ErrorValidation, kind)
	}
	snap, err := s.repomanager.Snapshots(s.db).Latest(ctx, userID, kind)
	if err != nil {
		return "", err
	}
	url, err := s.storage.PresignGet(ctx, snap.StorageKey, s.urlValidity)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return url, nil
}
