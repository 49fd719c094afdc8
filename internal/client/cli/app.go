package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/registerface/internal/client/client"
	"github.com/dmitrijs2005/registerface/internal/client/config"
	"github.com/dmitrijs2005/registerface/internal/client/services"
	"github.com/dmitrijs2005/registerface/internal/filex"
	"github.com/dmitrijs2005/registerface/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const sessionDBName = "session.db"

type App struct {
	config    *config.Config
	auth      services.AuthService
	snapshots services.SnapshotService
	logger    logging.Logger
	Mode      Mode
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()
	logger := logging.New(c.LogFormat, os.Stderr)

	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, sessionDBName))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewFaceAuthClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:    c,
		auth:      services.NewAuthService(apiClient, db, logger),
		snapshots: services.NewSnapshotService(apiClient),
		logger:    logger,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(context.Background(), fmt.Sprintf("switched to %s mode", mode))
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.auth.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.CurrentUser() != ""
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.auth.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the server every interval and flips Mode
// accordingly. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
