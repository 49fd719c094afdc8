package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/registerface/internal/common"
	pb "github.com/dmitrijs2005/registerface/internal/proto"
	"github.com/dmitrijs2005/registerface/internal/server/models"
	"github.com/dmitrijs2005/registerface/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toPBUser(u models.User) *pb.User {
	return &pb.User{
		Id:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		RegistrationDate: timestamppb.New(u.RegistrationDate),
		LastLogin:        timestamppb.New(u.LastLogin),
		HasFace:          u.HasFace(),
	}
}

// toStatus maps service errors onto gRPC codes. Unknown errors are logged
// and hidden behind codes.Internal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var mismatch *services.MismatchError
	switch {
	case errors.As(err, &mismatch):
		return status.Error(codes.PermissionDenied, mismatch.Error())
	case errors.Is(err, common.ErrorValidation), errors.Is(err, common.ErrInvalidFaceData):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrTooManyAttempts):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, common.ErrFaceNotEnrolled):
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "user_id", req.Id)

	user, err := s.users.Register(ctx, services.RegisterInput{
		ID:       req.Id,
		Name:     req.Name,
		Email:    req.Email,
		FaceData: req.FaceData,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RegisterResponse{User: toPBUser(user)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	res, err := s.users.Login(ctx, req.Id, req.FaceData)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
		Similarity:   res.Similarity,
		User:         toPBUser(res.User),
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	pair, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RefreshTokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Profile(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetProfileResponse{User: toPBUser(user)}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.UpdateProfile(ctx, userID, req.Name, req.Email)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UpdateProfileResponse{User: toPBUser(user)}, nil
}

func (s *GRPCServer) EnrollFace(ctx context.Context, req *pb.EnrollFaceRequest) (*pb.EnrollFaceResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.EnrollFace(ctx, userID, req.FaceData)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.EnrollFaceResponse{User: toPBUser(user)}, nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, req *pb.DeleteAccountRequest) (*pb.DeleteAccountResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteAccountResponse{}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx, int(req.Limit), int(req.Offset))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.User, 0, len(users))
	for _, u := range users {
		out = append(out, toPBUser(u))
	}
	return &pb.ListUsersResponse{Users: out}, nil
}

func (s *GRPCServer) RequestSnapshotUpload(ctx context.Context, req *pb.RequestSnapshotUploadRequest) (*pb.RequestSnapshotUploadResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	up, err := s.snapshots.RequestUpload(ctx, userID, models.SnapshotKind(req.Kind))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RequestSnapshotUploadResponse{SnapshotId: up.ID, UploadUrl: up.URL}, nil
}

func (s *GRPCServer) ConfirmSnapshotUpload(ctx context.Context, req *pb.ConfirmSnapshotUploadRequest) (*pb.ConfirmSnapshotUploadResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.snapshots.ConfirmUpload(ctx, userID, req.SnapshotId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ConfirmSnapshotUploadResponse{}, nil
}

func (s *GRPCServer) GetSnapshotURL(ctx context.Context, req *pb.GetSnapshotURLRequest) (*pb.GetSnapshotURLResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	url, err := s.snapshots.DownloadURL(ctx, userID, models.SnapshotKind(req.Kind))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetSnapshotURLResponse{Url: url}, nil
}
