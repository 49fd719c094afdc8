package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/registerface/internal/common"
	"github.com/dmitrijs2005/registerface/internal/logging"
	pb "github.com/dmitrijs2005/registerface/internal/proto"
	"github.com/dmitrijs2005/registerface/internal/server/auth"
	"github.com/dmitrijs2005/registerface/internal/server/metrics"
	"github.com/dmitrijs2005/registerface/internal/server/models"
	"github.com/dmitrijs2005/registerface/internal/server/services"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

const testSecret = "secret"

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeUsers struct {
	register      func(services.RegisterInput) (models.User, error)
	login         func(id, face string) (*services.LoginResult, error)
	refresh       func(token string) (*services.TokenPair, error)
	profile       func(id string) (models.User, error)
	updateProfile func(id, name, email string) (models.User, error)
	enroll        func(id, face string) (models.User, error)
	del           func(id string) error
	list          func(limit, offset int) ([]models.User, error)
}

func (f *fakeUsers) Register(_ context.Context, in services.RegisterInput) (models.User, error) {
	return f.register(in)
}

func (f *fakeUsers) Login(_ context.Context, id, face string) (*services.LoginResult, error) {
	return f.login(id, face)
}

func (f *fakeUsers) RefreshToken(_ context.Context, token string) (*services.TokenPair, error) {
	return f.refresh(token)
}

func (f *fakeUsers) Profile(_ context.Context, id string) (models.User, error) {
	return f.profile(id)
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id, name, email string) (models.User, error) {
	return f.updateProfile(id, name, email)
}

func (f *fakeUsers) EnrollFace(_ context.Context, id, face string) (models.User, error) {
	return f.enroll(id, face)
}

func (f *fakeUsers) Delete(_ context.Context, id string) error {
	return f.del(id)
}

func (f *fakeUsers) List(_ context.Context, limit, offset int) ([]models.User, error) {
	return f.list(limit, offset)
}

type fakeSnapshots struct {
	requestUpload func(userID string, kind models.SnapshotKind) (models.SnapshotUpload, error)
	confirm       func(userID, id string) error
	downloadURL   func(userID string, kind models.SnapshotKind) (string, error)
}

func (f *fakeSnapshots) RequestUpload(_ context.Context, userID string, kind models.SnapshotKind) (models.SnapshotUpload, error) {
	return f.requestUpload(userID, kind)
}

func (f *fakeSnapshots) ConfirmUpload(_ context.Context, userID, id string) error {
	return f.confirm(userID, id)
}

func (f *fakeSnapshots) DownloadURL(_ context.Context, userID string, kind models.SnapshotKind) (string, error) {
	return f.downloadURL(userID, kind)
}

func newTestServer(us UserService, ss SnapshotService, m *metrics.Metrics) *GRPCServer {
	s, _ := NewGRPCServer("bufnet", logging.Nop(), us, ss, testSecret, m)
	return s
}

// startBufServer serves s over an in-memory listener and returns a client
// speaking the JSON codec to it.
func startBufServer(t *testing.T, s *GRPCServer) pb.FaceAuthServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return pb.NewFaceAuthServiceClient(conn)
}

func authCtx(t *testing.T, userID string) context.Context {
	t.Helper()
	token, err := auth.GenerateToken(userID, []byte(testSecret), time.Minute)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)
}

func alice() models.User {
	return models.NewUser("1001", "Alice", "alice@example.com", testNow, testNow.Add(time.Hour),
		models.WithFace("leftEye:0.1000,0.1000;smile:0.0000"))
}
