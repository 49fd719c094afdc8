package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/registerface/internal/common"
	"github.com/dmitrijs2005/registerface/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	putErr, getErr error
	lastKey        string
	lastTTL        time.Duration

	// missing lists keys Exists reports as absent.
	missing   map[string]bool
	existsErr error
}

func (f *fakeStorage) Exists(ctx context.Context, key string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return !f.missing[key], nil
}

func (f *fakeStorage) PresignPut(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	f.lastKey, f.lastTTL = key, ttl
	return "https://s3.local/put/" + key, nil
}

func (f *fakeStorage) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	f.lastKey, f.lastTTL = key, ttl
	return "https://s3.local/get/" + key, nil
}

const snapID = "9b2f4a3e-6a0c-4d8e-9a55-3f8a1c2b7d10"

func newSnapshotService(t *testing.T) (*SnapshotService, *fakeRepoManager, *fakeStorage) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	st := &fakeStorage{}
	cfg := testConfig()
	cfg.SnapshotURLValidity = 10 * time.Minute

	s := NewSnapshotService(db, rm, st, cfg)
	s.now = func() time.Time { return fixedNow }
	s.newID = func() string { return snapID }
	return s, rm, st
}

func TestRequestUpload(t *testing.T) {
	s, rm, st := newSnapshotService(t)

	up, err := s.RequestUpload(context.Background(), "1001", models.SnapshotRegistration)
	require.NoError(t, err)

	wantKey := "faces/1001/registration/2024/06/01/" + snapID + ".jpg"
	assert.Equal(t, snapID, up.ID)
	assert.Equal(t, "https://s3.local/put/"+wantKey, up.URL)
	assert.Equal(t, 10*time.Minute, st.lastTTL)

	snap := rm.s.snaps[snapID]
	assert.Equal(t, models.SnapshotPending, snap.Status)
	assert.Equal(t, wantKey, snap.StorageKey)
	assert.Equal(t, "1001", snap.UserID)
}

func TestRequestUpload_Errors(t *testing.T) {
	s, rm, st := newSnapshotService(t)

	_, err := s.RequestUpload(context.Background(), "1001", models.SnapshotKind("selfie"))
	assert.ErrorIs(t, err, common.ErrorValidation)

	st.putErr = errBoom{}
	_, err = s.RequestUpload(context.Background(), "1001", models.SnapshotLogin)
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.Empty(t, rm.s.snaps)

	st.putErr = nil
	rm.s.createErr = common.ErrorAlreadyExists
	_, err = s.RequestUpload(context.Background(), "1001", models.SnapshotLogin)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestConfirmAndDownload(t *testing.T) {
	s, _, _ := newSnapshotService(t)

	_, err := s.DownloadURL(context.Background(), "1001", models.SnapshotLogin)
	require.ErrorIs(t, err, common.ErrorNotFound, "nothing uploaded yet")

	_, err = s.RequestUpload(context.Background(), "1001", models.SnapshotLogin)
	require.NoError(t, err)

	_, err = s.DownloadURL(context.Background(), "1001", models.SnapshotLogin)
	require.ErrorIs(t, err, common.ErrorNotFound, "pending snapshots are not served")

	assert.ErrorIs(t, s.ConfirmUpload(context.Background(), "1001", "not-a-uuid"), common.ErrorValidation)
	assert.ErrorIs(t, s.ConfirmUpload(context.Background(), "2002", snapID), common.ErrorNotFound)
	require.NoError(t, s.ConfirmUpload(context.Background(), "1001", snapID))

	url, err := s.DownloadURL(context.Background(), "1001", models.SnapshotLogin)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://s3.local/get/faces/1001/login/"))

	_, err = s.DownloadURL(context.Background(), "1001", "bogus")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestConfirmUpload_ChecksObject(t *testing.T) {
	tests := []struct {
		name       string
		missing    bool
		existsErr  error
		wantErr    error
		wantStatus string
	}{
		{name: "uploaded", wantStatus: models.SnapshotUploaded},
		{name: "object missing", missing: true, wantErr: common.ErrorNotFound, wantStatus: models.SnapshotPending},
		{name: "storage error", existsErr: errBoom{}, wantErr: common.ErrorInternal, wantStatus: models.SnapshotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rm, st := newSnapshotService(t)
			_, err := s.RequestUpload(context.Background(), "1001", models.SnapshotRegistration)
			require.NoError(t, err)
			key := rm.s.snaps[snapID].StorageKey
			if tt.missing {
				st.missing = map[string]bool{key: true}
			}
			st.existsErr = tt.existsErr

			err = s.ConfirmUpload(context.Background(), "1001", snapID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, rm.s.snaps[snapID].Status)
		})
	}
}

func TestDownloadURL_PresignError(t *testing.T) {
	s, rm, st := newSnapshotService(t)
	rm.s.snaps[snapID] = models.Snapshot{
		ID: snapID, UserID: "1001", Kind: models.SnapshotLogin,
		StorageKey: "k", Status: models.SnapshotUploaded, CreatedAt: fixedNow,
	}
	st.getErr = errBoom{}

	_, err := s.DownloadURL(context.Background(), "1001", models.SnapshotLogin)
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestNewSnapshotService_DefaultValidity(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := NewSnapshotService(db, newFakeRepoManager(), &fakeStorage{}, testConfig())
	assert.Equal(t, 15*time.Minute, s.urlValidity)
}
