// Package users provides a PostgreSQL-backed repository for registered users.
// Face descriptors are sealed before they are written and opened on read.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/registerface/internal/common"
	"github.com/dmitrijs2005/registerface/internal/dbx"
	"github.com/dmitrijs2005/registerface/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db     dbx.DBTX
	sealer FaceSealer
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX, sealer FaceSealer) *PostgresRepository {
	return &PostgresRepository{db: db, sealer: sealer}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) sealFace(u models.User) (any, error) {
	face, ok := u.Face()
	if !ok {
		return nil, nil
	}
	sealed, err := r.sealer.SealString(face)
	if err != nil {
		return nil, fmt.Errorf("seal face data: %w", err)
	}
	return sealed, nil
}

func (r *PostgresRepository) scanUser(row rowScanner) (models.User, error) {
	var (
		u      models.User
		sealed []byte
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.RegistrationDate, &u.LastLogin, &sealed); err != nil {
		return models.User{}, err
	}
	if sealed != nil {
		face, err := r.sealer.OpenString(sealed)
		if err != nil {
			return models.User{}, fmt.Errorf("open face data of user %s: %w", u.ID, err)
		}
		u = u.WithFaceData(face)
	}
	return u, nil
}

// Create inserts a new user row.
func (r *PostgresRepository) Create(ctx context.Context, u models.User) error {
	face, err := r.sealFace(u)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, name, email, registration_date, last_login, face_data)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.RegistrationDate.UTC(), u.LastLogin.UTC(), face)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get loads a user by ID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (models.User, error) {
	query := `
		SELECT id, name, email, registration_date, last_login, face_data
		FROM users
		WHERE id = $1
	`
	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, common.ErrorNotFound
		}
		return models.User{}, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

// UpdateProfile sets name and email, leaving face data untouched.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id, name, email string) error {
	query := `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, name, email)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if dbx.RowsAffected(res) == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// UpdateFace seals faceData and stores it as the user's descriptor.
func (r *PostgresRepository) UpdateFace(ctx context.Context, id, faceData string) error {
	sealed, err := r.sealer.SealString(faceData)
	if err != nil {
		return fmt.Errorf("seal face data: %w", err)
	}

	query := `
		UPDATE users
		SET face_data = $2
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, sealed)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if dbx.RowsAffected(res) == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// UpdateLastLogin stores t as the user's last login.
func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	query := `
		UPDATE users
		SET last_login = $2
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, t.UTC())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if dbx.RowsAffected(res) == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Delete removes a user by ID.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM users
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if dbx.RowsAffected(res) == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// List returns a page of users ordered by registration date, then ID.
func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	query := `
		SELECT id, name, email, registration_date, last_login, face_data
		FROM users
		ORDER BY registration_date, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
