// Package services contains application services for the registerface client.
// This file defines the authentication service: register, face login, the
// persisted session and the account operations of the logged-in user.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/registerface/internal/client/client"
	"github.com/dmitrijs2005/registerface/internal/client/models"
	"github.com/dmitrijs2005/registerface/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/registerface/internal/common"
	"github.com/dmitrijs2005/registerface/internal/dbx"
	"github.com/dmitrijs2005/registerface/internal/logging"
)

// ErrNotLoggedIn is returned by account operations when no session exists.
var ErrNotLoggedIn = errors.New("not logged in")

// AuthService defines authentication and account operations for the CLI.
//
// Contract:
//   - Login: match a face on the server and persist the issued tokens.
//   - RestoreSession: reload a session saved by a previous run.
//   - Logout: forget the local session.
//   - Profile/UpdateProfile/EnrollFace/DeleteAccount act on the logged-in user.
//
// Expired access tokens are refreshed by the client transport, and every
// refreshed pair is written back to the session store.
type AuthService interface {
	Register(ctx context.Context, id, name, email, faceData string) (*models.Profile, error)
	Login(ctx context.Context, id, faceData string) (*models.LoginResult, error)
	Logout(ctx context.Context) error
	RestoreSession(ctx context.Context) (string, error)
	CurrentUser() string

	Profile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, name, email string) (*models.Profile, error)
	EnrollFace(ctx context.Context, faceData string) (*models.Profile, error)
	DeleteAccount(ctx context.Context) error
	ListUsers(ctx context.Context, limit, offset int) ([]models.Profile, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger
	userID string
}

// NewAuthService binds the API client to the local session database.
func NewAuthService(c client.Client, db *sql.DB, logger logging.Logger) AuthService {
	a := &authService{client: c, db: db, logger: logger}
	c.OnTokensChanged(a.saveTokens)
	return a
}

func (a *authService) getSessionRepo() sessions.Repository {
	return sessions.NewSQLiteRepository(a.db)
}

func (a *authService) saveTokens(access, refresh string) {
	ctx := context.Background()
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sessions.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionAccessToken, []byte(access)); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionRefreshToken, []byte(refresh))
	})
	if err != nil {
		a.logger.Error(ctx, "failed to save session tokens", "error", err)
	}
}

func (a *authService) Register(ctx context.Context, id, name, email, faceData string) (*models.Profile, error) {
	p, err := a.client.Register(ctx, id, name, email, faceData)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return p, nil
}

// Login matches faceData against the face enrolled for id. On success the
// tokens are already stored through the token callback, here the user id
// joins them.
func (a *authService) Login(ctx context.Context, id, faceData string) (*models.LoginResult, error) {
	res, err := a.client.Login(ctx, id, faceData)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.getSessionRepo().Set(ctx, common.SessionUserID, []byte(res.Profile.ID)); err != nil {
		return nil, err
	}
	a.userID = res.Profile.ID
	return res, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.getSessionRepo().Clear(ctx); err != nil {
		return err
	}
	a.client.SetTokens("", "")
	a.userID = ""
	return nil
}

// RestoreSession loads the saved user and tokens. It returns "" when there
// is no complete session.
func (a *authService) RestoreSession(ctx context.Context) (string, error) {
	saved, err := a.getSessionRepo().List(ctx)
	if err != nil {
		return "", err
	}

	userID := string(saved[common.SessionUserID])
	refresh := string(saved[common.SessionRefreshToken])
	if userID == "" || refresh == "" {
		return "", nil
	}

	a.client.SetTokens(string(saved[common.SessionAccessToken]), refresh)
	a.userID = userID
	return userID, nil
}

func (a *authService) CurrentUser() string {
	return a.userID
}

func (a *authService) requireSession() error {
	if a.userID == "" {
		return ErrNotLoggedIn
	}
	return nil
}

// dropOnUnauthorized forgets the session once the server no longer accepts
// it, so the CLI asks for a fresh login.
func (a *authService) dropOnUnauthorized(ctx context.Context, err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		if clearErr := a.Logout(ctx); clearErr != nil {
			a.logger.Warn(ctx, "failed to clear session", "error", clearErr)
		}
		return fmt.Errorf("%w: session expired, please log in again", err)
	}
	return err
}

func (a *authService) Profile(ctx context.Context) (*models.Profile, error) {
	if err := a.requireSession(); err != nil {
		return nil, err
	}
	p, err := a.client.Profile(ctx)
	if err != nil {
		return nil, a.dropOnUnauthorized(ctx, err)
	}
	return p, nil
}

func (a *authService) UpdateProfile(ctx context.Context, name, email string) (*models.Profile, error) {
	if err := a.requireSession(); err != nil {
		return nil, err
	}
	p, err := a.client.UpdateProfile(ctx, name, email)
	if err != nil {
		return nil, a.dropOnUnauthorized(ctx, err)
	}
	return p, nil
}

func (a *authService) EnrollFace(ctx context.Context, faceData string) (*models.Profile, error) {
	if err := a.requireSession(); err != nil {
		return nil, err
	}
	p, err := a.client.EnrollFace(ctx, faceData)
	if err != nil {
		return nil, a.dropOnUnauthorized(ctx, err)
	}
	return p, nil
}

// DeleteAccount removes the user on the server and then the local session.
func (a *authService) DeleteAccount(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if err := a.client.DeleteAccount(ctx); err != nil {
		return a.dropOnUnauthorized(ctx, err)
	}
	return a.Logout(ctx)
}

func (a *authService) ListUsers(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	if err := a.requireSession(); err != nil {
		return nil, err
	}
	users, err := a.client.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, a.dropOnUnauthorized(ctx, err)
	}
	return users, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
