package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if id := a.auth.CurrentUser(); id != "" {
		s = id + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root restores the previous session, starts the connectivity watcher and
// runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to registerface CLI (type 'help' for commands)")

	id, err := a.auth.RestoreSession(ctx)
	if err != nil {
		a.logger.Warn(ctx, "failed to restore session", "error", err)
	}
	if id != "" {
		printlnFn("Restored session for user", id)
	}

	a.checkOnline(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
