package snapshots

import (
	"context"

	"github.com/dmitrijs2005/registerface/internal/server/models"
)

// Repository tracks face snapshots stored in object storage.
type Repository interface {
	Create(ctx context.Context, s models.Snapshot) error
	Get(ctx context.Context, id, userID string) (models.Snapshot, error)
	MarkUploaded(ctx context.Context, id, userID string) error
	Latest(ctx context.Context, userID string, kind models.SnapshotKind) (models.Snapshot, error)
}
