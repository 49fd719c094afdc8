package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/registerface/internal/client/client"
	"github.com/dmitrijs2005/registerface/internal/client/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE sessions (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func getSession(t *testing.T, db *sql.DB, k string) string {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM sessions WHERE key = ?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return ""
	}
	require.NoError(t, err)
	return string(v)
}

// ---- fake client ----

type fakeClient struct {
	CloseErr error
	PingErr  error

	RegisterErr error
	LoginErr    error
	ProfileErr  error
	DeleteErr   error
	UploadErr   error
	ConfirmErr  error
	URLErr      error

	access, refresh string
	onTokens        func(access, refresh string)

	LastRegister  []string
	LastEnroll    string
	LastList      [2]int
	LastConfirmed string
	Deleted       bool
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error                  { return f.CloseErr }
func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Register(ctx context.Context, id, name, email, faceData string) (*models.Profile, error) {
	f.LastRegister = []string{id, name, email, faceData}
	if f.RegisterErr != nil {
		return nil, f.RegisterErr
	}
	return &models.Profile{ID: id, Name: name, Email: email, HasFace: faceData != ""}, nil
}

func (f *fakeClient) Login(ctx context.Context, id, faceData string) (*models.LoginResult, error) {
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	f.access, f.refresh = "a1", "r1"
	if f.onTokens != nil {
		f.onTokens(f.access, f.refresh)
	}
	return &models.LoginResult{Profile: models.Profile{ID: id, HasFace: true}, Similarity: 90}, nil
}

func (f *fakeClient) Profile(ctx context.Context) (*models.Profile, error) {
	if f.ProfileErr != nil {
		return nil, f.ProfileErr
	}
	return &models.Profile{ID: "1001", Name: "Alice"}, nil
}

func (f *fakeClient) UpdateProfile(ctx context.Context, name, email string) (*models.Profile, error) {
	return &models.Profile{ID: "1001", Name: name, Email: email}, nil
}

func (f *fakeClient) EnrollFace(ctx context.Context, faceData string) (*models.Profile, error) {
	f.LastEnroll = faceData
	return &models.Profile{ID: "1001", HasFace: true}, nil
}

func (f *fakeClient) DeleteAccount(ctx context.Context) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.Deleted = true
	return nil
}

func (f *fakeClient) ListUsers(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	f.LastList = [2]int{limit, offset}
	return []models.Profile{{ID: "1001"}}, nil
}

func (f *fakeClient) RequestSnapshotUpload(ctx context.Context, kind string) (*models.SnapshotUpload, error) {
	if f.UploadErr != nil {
		return nil, f.UploadErr
	}
	return &models.SnapshotUpload{ID: "snap-1", URL: "http://s3/put/" + kind}, nil
}

func (f *fakeClient) ConfirmSnapshotUpload(ctx context.Context, snapshotID string) error {
	f.LastConfirmed = snapshotID
	return f.ConfirmErr
}

func (f *fakeClient) SnapshotURL(ctx context.Context, kind string) (string, error) {
	if f.URLErr != nil {
		return "", f.URLErr
	}
	return "http://s3/get/" + kind, nil
}

func (f *fakeClient) Tokens() (string, string) { return f.access, f.refresh }

func (f *fakeClient) SetTokens(access, refresh string) { f.access, f.refresh = access, refresh }

func (f *fakeClient) OnTokensChanged(fn func(access, refresh string)) { f.onTokens = fn }
