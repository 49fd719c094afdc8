// Package snapshots keeps the metadata of face snapshot images. The images
// themselves live in object storage under Snapshot.StorageKey.
package snapshots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/registerface/internal/common"
	"github.com/dmitrijs2005/registerface/internal/dbx"
	"github.com/dmitrijs2005/registerface/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a snapshot row. Status defaults to pending when empty.
func (r *PostgresRepository) Create(ctx context.Context, s models.Snapshot) error {
	if s.Status == "" {
		s.Status = models.SnapshotPending
	}
	query := `
		INSERT INTO face_snapshots (id, user_id, kind, storage_key, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, string(s.Kind), s.StorageKey, s.Status, s.CreatedAt.UTC())
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get loads a snapshot owned by userID.
func (r *PostgresRepository) Get(ctx context.Context, id, userID string) (models.Snapshot, error) {
	query := `
		SELECT id, user_id, kind, storage_key, status, created_at
		FROM face_snapshots
		WHERE id = $1 AND user_id = $2
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id, userID))
}

// MarkUploaded flips a snapshot owned by userID to uploaded.
func (r *PostgresRepository) MarkUploaded(ctx context.Context, id, userID string) error {
	query := `
		UPDATE face_snapshots
		SET status = $3
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, userID, models.SnapshotUploaded)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if dbx.RowsAffected(res) == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Latest returns the newest uploaded snapshot of the given kind.
func (r *PostgresRepository) Latest(ctx context.Context, userID string, kind models.SnapshotKind) (models.Snapshot, error) {
	query := `
		SELECT id, user_id, kind, storage_key, status, created_at
		FROM face_snapshots
		WHERE user_id = $1 AND kind = $2 AND status = $3
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID, string(kind), models.SnapshotUploaded))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (models.Snapshot, error) {
	var (
		s    models.Snapshot
		kstr string
	)
	err := row.Scan(&s.ID, &s.UserID, &kstr, &s.StorageKey, &s.Status, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, common.ErrorNotFound
		}
		return models.Snapshot{}, fmt.Errorf("db error: %w", err)
	}
	s.Kind = models.SnapshotKind(kstr)
	return s, nil
}
