package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/registerface/internal/common"
	"github.com/dmitrijs2005/registerface/internal/dbx"
	"github.com/dmitrijs2005/registerface/internal/server/models"
	refreshtokensrepo "github.com/dmitrijs2005/registerface/internal/server/repositories/refreshtokens"
	snapshotsrepo "github.com/dmitrijs2005/registerface/internal/server/repositories/snapshots"
	usersrepo "github.com/dmitrijs2005/registerface/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// fakeUsersRepo keeps users in memory.
type fakeUsersRepo struct {
	mu    sync.Mutex
	users map[string]models.User

	createErr error
	getErr    error
	updateErr error
	loginErr  error
	deleteErr error
	listErr   error

	listArgs [2]int

	// afterGet runs once after the next Get, outside the lock.
	afterGet func()
}

func newFakeUsersRepo(users ...models.User) *fakeUsersRepo {
	r := &fakeUsersRepo{users: make(map[string]models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (f *fakeUsersRepo) Create(ctx context.Context, u models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[u.ID]; ok {
		return common.ErrorAlreadyExists
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUsersRepo) Get(ctx context.Context, id string) (models.User, error) {
	u, err := f.get(id)
	f.mu.Lock()
	hook := f.afterGet
	f.afterGet = nil
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return u, err
}

func (f *fakeUsersRepo) get(id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return models.User{}, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return models.User{}, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) UpdateProfile(ctx context.Context, id, name, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	f.users[id] = u.WithProfile(name, email)
	return nil
}

func (f *fakeUsersRepo) UpdateFace(ctx context.Context, id, faceData string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	f.users[id] = u.WithFaceData(faceData)
	return nil
}

func (f *fakeUsersRepo) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loginErr != nil {
		return f.loginErr
	}
	u, ok := f.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	f.users[id] = u.WithLastLogin(t)
	return nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUsersRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listArgs = [2]int{limit, offset}
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return []models.User{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeRefreshRepo struct {
	mu     sync.Mutex
	tokens map[string]models.RefreshToken

	findErr      error
	delErr       error
	createErr    error
	delByUserErr error

	// consumeOnFind drops the token right after Find returns it, as a
	// concurrent refresh would.
	consumeOnFind bool
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{tokens: make(map[string]models.RefreshToken)}
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	rt, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if f.consumeOnFind {
		delete(f.tokens, token)
	}
	return &rt, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delErr != nil {
		return f.delErr
	}
	if _, ok := f.tokens[token]; !ok {
		return common.ErrorNotFound
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteByUser(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delByUserErr != nil {
		return f.delByUserErr
	}
	for k, v := range f.tokens {
		if v.UserID == userID {
			delete(f.tokens, k)
		}
	}
	return nil
}

func (f *fakeRefreshRepo) count(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, v := range f.tokens {
		if v.UserID == userID {
			n++
		}
	}
	return n
}

type fakeSnapshotsRepo struct {
	mu    sync.Mutex
	snaps map[string]models.Snapshot

	createErr error
}

func newFakeSnapshotsRepo() *fakeSnapshotsRepo {
	return &fakeSnapshotsRepo{snaps: make(map[string]models.Snapshot)}
}

func (f *fakeSnapshotsRepo) Create(ctx context.Context, s models.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.snaps[s.ID] = s
	return nil
}

func (f *fakeSnapshotsRepo) Get(ctx context.Context, id, userID string) (models.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.snaps[id]
	if !ok || s.UserID != userID {
		return models.Snapshot{}, common.ErrorNotFound
	}
	return s, nil
}

func (f *fakeSnapshotsRepo) MarkUploaded(ctx context.Context, id, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.snaps[id]
	if !ok || s.UserID != userID {
		return common.ErrorNotFound
	}
	s.Status = models.SnapshotUploaded
	f.snaps[id] = s
	return nil
}

func (f *fakeSnapshotsRepo) Latest(ctx context.Context, userID string, kind models.SnapshotKind) (models.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var (
		best  models.Snapshot
		found bool
	)
	for _, s := range f.snaps {
		if s.UserID != userID || s.Kind != kind || s.Status != models.SnapshotUploaded {
			continue
		}
		if !found || s.CreatedAt.After(best.CreatedAt) {
			best, found = s, true
		}
	}
	if !found {
		return models.Snapshot{}, common.ErrorNotFound
	}
	return best, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	s *fakeSnapshotsRepo
}

func newFakeRepoManager(users ...models.User) *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(users...), r: newFakeRefreshRepo(), s: newFakeSnapshotsRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error           { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Snapshots(db dbx.DBTX) snapshotsrepo.Repository         { return m.s }
