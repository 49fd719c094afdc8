package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/registerface/internal/client/models"
	"github.com/dmitrijs2005/registerface/internal/common"
	pb "github.com/dmitrijs2005/registerface/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	dialOpts    []grpc.DialOption
	conn        *grpc.ClientConn
	client      pb.FaceAuthServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onTokens     func(access, refresh string)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the access token and, when the server
// reports it expired, refreshes the pair once and repeats the call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if method == pb.FaceAuthService_RefreshToken_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, refresh := s.Tokens()
	if access != "" {
		ctx = withAccessToken(ctx, access)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated {
		return err
	}
	if st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}

	s.storeTokens(refreshTokenResponse.AccessToken, refreshTokenResponse.RefreshToken)

	ctx = withAccessToken(ctx, refreshTokenResponse.AccessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewFaceAuthClient connects to endpointURL with insecure credentials.
// Extra dial options are appended, tests use them to dial a bufconn.
func NewFaceAuthClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, dialOpts: opts}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFaceAuthServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

func (s *GRPCClient) OnTokensChanged(fn func(access, refresh string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTokens = fn
}

func (s *GRPCClient) storeTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	fn := s.onTokens
	s.mu.Unlock()

	if fn != nil {
		fn(access, refresh)
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Register(ctx context.Context, id, name, email, faceData string) (*models.Profile, error) {

	req := &pb.RegisterRequest{Id: id, Name: name, Email: email, FaceData: faceData}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return toProfile(resp.User), nil
}

func (s *GRPCClient) Login(ctx context.Context, id, faceData string) (*models.LoginResult, error) {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Id: id, FaceData: faceData})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.storeTokens(resp.AccessToken, resp.RefreshToken)

	return &models.LoginResult{Profile: *toProfile(resp.User), Similarity: resp.Similarity}, nil
}

func (s *GRPCClient) Profile(ctx context.Context) (*models.Profile, error) {
	resp, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return toProfile(resp.User), nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, name, email string) (*models.Profile, error) {
	resp, err := s.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{Name: name, Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}
	return toProfile(resp.User), nil
}

func (s *GRPCClient) EnrollFace(ctx context.Context, faceData string) (*models.Profile, error) {
	resp, err := s.client.EnrollFace(ctx, &pb.EnrollFaceRequest{FaceData: faceData})
	if err != nil {
		return nil, s.mapError(err)
	}
	return toProfile(resp.User), nil
}

func (s *GRPCClient) DeleteAccount(ctx context.Context) error {
	if _, err := s.client.DeleteAccount(ctx, &pb.DeleteAccountRequest{}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListUsers(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	resp, err := s.client.ListUsers(ctx, &pb.ListUsersRequest{Limit: int32(limit), Offset: int32(offset)})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]models.Profile, 0, len(resp.Users))
	for _, u := range resp.Users {
		out = append(out, *toProfile(u))
	}
	return out, nil
}

func (s *GRPCClient) RequestSnapshotUpload(ctx context.Context, kind string) (*models.SnapshotUpload, error) {
	resp, err := s.client.RequestSnapshotUpload(ctx, &pb.RequestSnapshotUploadRequest{Kind: kind})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.SnapshotUpload{ID: resp.SnapshotId, URL: resp.UploadUrl}, nil
}

func (s *GRPCClient) ConfirmSnapshotUpload(ctx context.Context, snapshotID string) error {
	if _, err := s.client.ConfirmSnapshotUpload(ctx, &pb.ConfirmSnapshotUploadRequest{SnapshotId: snapshotID}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) SnapshotURL(ctx context.Context, kind string) (string, error) {
	resp, err := s.client.GetSnapshotURL(ctx, &pb.GetSnapshotURLRequest{Kind: kind})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Url, nil
}

func toProfile(u *pb.User) *models.Profile {
	if u == nil {
		return &models.Profile{}
	}
	return &models.Profile{
		ID:               u.Id,
		Name:             u.Name,
		Email:            u.Email,
		RegistrationDate: u.RegistrationDate.AsTime(),
		LastLogin:        u.LastLogin.AsTime(),
		HasFace:          u.HasFace,
	}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return fmt.Errorf("%w (%s)", common.ErrFaceMismatch, st.Message())
	case codes.ResourceExhausted:
		return fmt.Errorf("%w (%s)", common.ErrTooManyAttempts, st.Message())
	case codes.FailedPrecondition:
		return common.ErrFaceNotEnrolled
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
