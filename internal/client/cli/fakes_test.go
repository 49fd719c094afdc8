package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/registerface/internal/client/config"
	"github.com/dmitrijs2005/registerface/internal/client/models"
	"github.com/dmitrijs2005/registerface/internal/client/services"
	"github.com/dmitrijs2005/registerface/internal/logging"
)

type fakeAuth struct {
	user string

	RegisterErr, LoginErr, ProfileErr, UpdateErr, EnrollErr, DeleteErr, ListErr, PingErr error

	restoreID string

	LastRegister []string
	LastUpdate   []string
	LastEnroll   string
	LastList     [2]int
	Deleted      bool
	Closed       bool
	Users        []models.Profile
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Register(_ context.Context, id, name, email, faceData string) (*models.Profile, error) {
	f.LastRegister = []string{id, name, email, faceData}
	if f.RegisterErr != nil {
		return nil, f.RegisterErr
	}
	return &models.Profile{ID: id, Name: name, Email: email, HasFace: faceData != ""}, nil
}

func (f *fakeAuth) Login(_ context.Context, id, faceData string) (*models.LoginResult, error) {
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	f.user = id
	return &models.LoginResult{Profile: models.Profile{ID: id, Name: "Alice"}, Similarity: 88.5}, nil
}

func (f *fakeAuth) Logout(context.Context) error { f.user = ""; return nil }

func (f *fakeAuth) RestoreSession(context.Context) (string, error) {
	f.user = f.restoreID
	return f.restoreID, nil
}

func (f *fakeAuth) CurrentUser() string { return f.user }

func (f *fakeAuth) Profile(context.Context) (*models.Profile, error) {
	if f.ProfileErr != nil {
		return nil, f.ProfileErr
	}
	return &models.Profile{ID: f.user, Name: "Alice", Email: "alice@example.com"}, nil
}

func (f *fakeAuth) UpdateProfile(_ context.Context, name, email string) (*models.Profile, error) {
	f.LastUpdate = []string{name, email}
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	return &models.Profile{ID: f.user, Name: name, Email: email}, nil
}

func (f *fakeAuth) EnrollFace(_ context.Context, faceData string) (*models.Profile, error) {
	f.LastEnroll = faceData
	if f.EnrollErr != nil {
		return nil, f.EnrollErr
	}
	return &models.Profile{ID: f.user, HasFace: true}, nil
}

func (f *fakeAuth) DeleteAccount(context.Context) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.Deleted = true
	f.user = ""
	return nil
}

func (f *fakeAuth) ListUsers(_ context.Context, limit, offset int) ([]models.Profile, error) {
	f.LastList = [2]int{limit, offset}
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Users, nil
}

func (f *fakeAuth) Ping(context.Context) error  { return f.PingErr }
func (f *fakeAuth) Close(context.Context) error { f.Closed = true; return nil }

type fakeSnapshots struct {
	UploadErr, DownloadErr error
	Uploaded               []byte
	UploadKind             string
	Data                   []byte
}

var _ services.SnapshotService = (*fakeSnapshots)(nil)

func (f *fakeSnapshots) Upload(_ context.Context, kind string, jpeg []byte) (string, error) {
	f.UploadKind, f.Uploaded = kind, jpeg
	if f.UploadErr != nil {
		return "", f.UploadErr
	}
	return "snap-1", nil
}

func (f *fakeSnapshots) Download(context.Context, string) ([]byte, error) {
	if f.DownloadErr != nil {
		return nil, f.DownloadErr
	}
	return f.Data, nil
}

// captureOutput collects everything printed through printlnFn.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&buf, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return &buf
}

// stubPrompts answers getSimpleText and getFaceData from fixed queues.
func stubPrompts(t *testing.T, texts []string, faces []string) {
	t.Helper()
	origText, origFace := getSimpleText, getFaceData
	t.Cleanup(func() { getSimpleText, getFaceData = origText, origFace })

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getFaceData = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(faces) == 0 {
			return "", io.EOF
		}
		s := faces[0]
		faces = faces[1:]
		return s, nil
	}
}

func newTestApp(auth *fakeAuth, snaps *fakeSnapshots) *App {
	return &App{
		config:    &config.Config{},
		auth:      auth,
		snapshots: snaps,
		logger:    logging.Nop(),
		reader:    bufio.NewReader(strings.NewReader("")),
		out:       io.Discard,
	}
}
