// Package users declares the server-side repository contract for
// registered users.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/registerface/internal/server/models"
)

// Repository persists models.User values.
type Repository interface {
	// Create inserts u. A taken ID yields common.ErrorAlreadyExists.
	Create(ctx context.Context, u models.User) error

	// Get loads the user by ID or returns common.ErrorNotFound.
	Get(ctx context.Context, id string) (models.User, error)

	// UpdateProfile changes name and email only.
	UpdateProfile(ctx context.Context, id, name, email string) error

	// UpdateFace replaces the face descriptor only.
	UpdateFace(ctx context.Context, id, faceData string) error

	// UpdateLastLogin sets the last authentication instant.
	UpdateLastLogin(ctx context.Context, id string, t time.Time) error

	// Delete removes the user and, through foreign keys, everything bound to it.
	Delete(ctx context.Context, id string) error

	// List returns users ordered by registration date.
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

// FaceSealer encrypts face descriptors at rest. *cryptox.Sealer satisfies it.
type FaceSealer interface {
	SealString(v string) ([]byte, error)
	OpenString(sealed []byte) (string, error)
}
