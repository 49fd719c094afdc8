package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/registerface/internal/cryptox"
	"github.com/dmitrijs2005/registerface/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/registerface/internal/server/repositories/snapshots"
	"github.com/dmitrijs2005/registerface/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func newManager(t *testing.T) RepositoryManager {
	t.Helper()
	sealer, err := cryptox.NewSealer([]byte("secret"))
	if err != nil {
		t.Fatalf("NewSealer error: %v", err)
	}
	return NewPostgresRepositoryManager(sealer)
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := newManager(t)

	if u := m.Users(db); u == nil {
		t.Fatal("Users() nil")
	}
	if rt := m.RefreshTokens(db); rt == nil {
		t.Fatal("RefreshTokens() nil")
	}
	if s := m.Snapshots(db); s == nil {
		t.Fatal("Snapshots() nil")
	}

	if _, ok := m.Users(db).(*users.PostgresRepository); !ok {
		t.Fatal("Users() must be *users.PostgresRepository")
	}
	if _, ok := m.RefreshTokens(db).(*refreshtokens.PostgresRepository); !ok {
		t.Fatal("RefreshTokens() must be *refreshtokens.PostgresRepository")
	}
	if _, ok := m.Snapshots(db).(*snapshots.PostgresRepository); !ok {
		t.Fatal("Snapshots() must be *snapshots.PostgresRepository")
	}
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	if err := newManager(t).RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	if err := newManager(t).RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
