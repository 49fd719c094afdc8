package client

import (
	"context"

	"github.com/dmitrijs2005/registerface/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, id, name, email, faceData string) (*models.Profile, error)
	Login(ctx context.Context, id, faceData string) (*models.LoginResult, error)

	Profile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, name, email string) (*models.Profile, error)
	EnrollFace(ctx context.Context, faceData string) (*models.Profile, error)
	DeleteAccount(ctx context.Context) error
	ListUsers(ctx context.Context, limit, offset int) ([]models.Profile, error)

	RequestSnapshotUpload(ctx context.Context, kind string) (*models.SnapshotUpload, error)
	ConfirmSnapshotUpload(ctx context.Context, snapshotID string) error
	SnapshotURL(ctx context.Context, kind string) (string, error)

	// Tokens returns the current access and refresh tokens.
	Tokens() (access, refresh string)
	// SetTokens installs tokens restored from a saved session.
	SetTokens(access, refresh string)
	// OnTokensChanged registers fn to be called after login or refresh.
	OnTokensChanged(fn func(access, refresh string))
}
