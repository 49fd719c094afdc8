// Package services contains server-side business logic. This file implements
// UserService, which handles registration, face login, profile management and
// issuing/refreshing JWTs plus server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/registerface/internal/common"
	"github.com/dmitrijs2005/registerface/internal/dbx"
	"github.com/dmitrijs2005/registerface/internal/face"
	"github.com/dmitrijs2005/registerface/internal/logging"
	"github.com/dmitrijs2005/registerface/internal/server/auth"
	"github.com/dmitrijs2005/registerface/internal/server/config"
	"github.com/dmitrijs2005/registerface/internal/server/metrics"
	"github.com/dmitrijs2005/registerface/internal/server/models"
	"github.com/dmitrijs2005/registerface/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
)

// Page bounds for List.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginResult is returned after a successful face login.
type LoginResult struct {
	Tokens     TokenPair
	Similarity float64
	User       models.User
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	ID       string `validate:"required,number,max=64"`
	Name     string `validate:"required,max=200"`
	Email    string `validate:"required,email,max=254"`
	FaceData string
}

type profileInput struct {
	Name  string `validate:"required,max=200"`
	Email string `validate:"required,email,max=254"`
}

// MismatchError reports a face that did not reach the match threshold.
type MismatchError struct {
	Similarity float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: similarity %.1f%%", common.ErrFaceMismatch, e.Similarity)
}

func (e *MismatchError) Unwrap() error { return common.ErrFaceMismatch }

// FaceLockout throttles repeated face mismatches. *lockout.Store satisfies it.
type FaceLockout interface {
	IsLocked(userID string) (bool, time.Duration)
	RecordFailure(userID string) bool
	RecordSuccess(userID string)
}

// LoginObserver receives face login outcomes. *metrics.Metrics satisfies it.
type LoginObserver interface {
	ObserveFaceLogin(outcome string, similarity float64)
}

type noLockout struct{}

func (noLockout) IsLocked(string) (bool, time.Duration) { return false, 0 }
func (noLockout) RecordFailure(string) bool             { return false }
func (noLockout) RecordSuccess(string)                  {}

type noObserver struct{}

func (noObserver) ObserveFaceLogin(string, float64) {}

// UserServiceOption customizes a UserService.
type UserServiceOption func(*UserService)

func WithLockout(l FaceLockout) UserServiceOption {
	return func(s *UserService) { s.lockout = l }
}

func WithLoginObserver(o LoginObserver) UserServiceOption {
	return func(s *UserService) { s.observer = o }
}

func WithLogger(l logging.Logger) UserServiceOption {
	return func(s *UserService) { s.logger = l.With("module", "users") }
}

// UserService provides user-related operations:
//   - Register: create users, optionally with an enrolled face
//   - Login: match a captured face and mint tokens
//   - RefreshToken: rotate refresh tokens and mint new access tokens
//   - Profile, UpdateProfile, EnrollFace, Delete, List
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	validate                     *validator.Validate
	lockout                      FaceLockout
	observer                     LoginObserver
	logger                       logging.Logger
	now                          func() time.Time
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	matchThreshold               float64
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, opts ...UserServiceOption) *UserService {
	threshold := cfg.MatchThreshold
	if threshold <= 0 {
		threshold = face.DefaultThreshold
	}
	s := &UserService{
		db:                           db,
		repomanager:                  m,
		validate:                     validator.New(),
		lockout:                      noLockout{},
		observer:                     noObserver{},
		logger:                       logging.Nop(),
		now:                          time.Now,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		matchThreshold:               threshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *UserService) validateStruct(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}

// Register creates a new user. RegistrationDate and LastLogin are both set
// to the current instant.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	if err := s.validateStruct(in); err != nil {
		return models.User{}, err
	}

	var opts []models.UserOption
	if in.FaceData != "" {
		if err := face.Validate(in.FaceData); err != nil {
			return models.User{}, err
		}
		opts = append(opts, models.WithFace(in.FaceData))
	}

	now := s.now().UTC()
	user := models.NewUser(in.ID, in.Name, in.Email, now, now, opts...)

	if err := s.repomanager.Users(s.db).Create(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}
	s.logger.Info(ctx, "user registered", "user_id", user.ID, "face", user.HasFace())
	return user, nil
}

// Login matches capturedFace against the face enrolled by userID and, on
// success, stores the login time and returns a new TokenPair.
func (s *UserService) Login(ctx context.Context, userID, capturedFace string) (*LoginResult, error) {
	if locked, retry := s.lockout.IsLocked(userID); locked {
		s.observer.ObserveFaceLogin(metrics.OutcomeLocked, 0)
		return nil, fmt.Errorf("%w: retry in %s", common.ErrTooManyAttempts, retry.Round(time.Second))
	}

	if err := face.Validate(capturedFace); err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	enrolled, ok := user.Face()
	if !ok {
		s.observer.ObserveFaceLogin(metrics.OutcomeNoFace, 0)
		return nil, common.ErrFaceNotEnrolled
	}

	res := face.CompareEncoded(enrolled, capturedFace, s.matchThreshold)
	if !res.Matches {
		s.observer.ObserveFaceLogin(metrics.OutcomeMismatch, res.Similarity)
		if s.lockout.RecordFailure(userID) {
			s.logger.Warn(ctx, "face login locked", "user_id", userID)
		}
		return nil, &MismatchError{Similarity: res.Similarity}
	}

	s.lockout.RecordSuccess(userID)
	s.observer.ObserveFaceLogin(metrics.OutcomeMatch, res.Similarity)

	user = user.WithLastLogin(s.now().UTC())

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).UpdateLastLogin(ctx, user.ID, user.LastLogin); err != nil {
			return fmt.Errorf("%w: %v", common.ErrorInternal, err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, user.ID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "face login", "user_id", user.ID, "similarity", res.Similarity)
	return &LoginResult{Tokens: *pair, Similarity: res.Similarity, User: user}, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(s.now()) {
		_ = repo.Delete(ctx, refreshToken)
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.RefreshTokens(tx)
		if err := repoTx.Delete(ctx, refreshToken); err != nil {
			// a concurrent refresh consumed the token first
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Profile returns the stored user.
func (s *UserService) Profile(ctx context.Context, userID string) (models.User, error) {
	return s.repomanager.Users(s.db).Get(ctx, userID)
}

// UpdateProfile changes the name and email of a user.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, email string) (models.User, error) {
	if err := s.validateStruct(profileInput{Name: name, Email: email}); err != nil {
		return models.User{}, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Get(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if err := repo.UpdateProfile(ctx, userID, name, email); err != nil {
		return models.User{}, err
	}
	return user.WithProfile(name, email), nil
}

// EnrollFace replaces the user's face descriptor.
func (s *UserService) EnrollFace(ctx context.Context, userID, faceData string) (models.User, error) {
	if err := face.Validate(faceData); err != nil {
		return models.User{}, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Get(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if err := repo.UpdateFace(ctx, userID, faceData); err != nil {
		return models.User{}, err
	}
	user = user.WithFaceData(faceData)
	s.lockout.RecordSuccess(userID)
	s.logger.Info(ctx, "face enrolled", "user_id", userID)
	return user, nil
}

// Delete removes the user together with its refresh tokens.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		return s.repomanager.Users(tx).Delete(ctx, userID)
	})
	if err != nil {
		return err
	}
	s.lockout.RecordSuccess(userID)
	s.logger.Info(ctx, "user deleted", "user_id", userID)
	return nil
}

// List pages through users. A non-positive limit means DefaultListLimit,
// anything above MaxListLimit is capped.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repomanager.Users(s.db).List(ctx, limit, offset)
}

// --- helpers below ---

func (s *UserService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.NewRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
