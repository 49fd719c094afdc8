package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "registerface.FaceAuthService"

const (
	FaceAuthService_Ping_FullMethodName                  = "/registerface.FaceAuthService/Ping"
	FaceAuthService_Register_FullMethodName              = "/registerface.FaceAuthService/Register"
	FaceAuthService_Login_FullMethodName                 = "/registerface.FaceAuthService/Login"
	FaceAuthService_RefreshToken_FullMethodName          = "/registerface.FaceAuthService/RefreshToken"
	FaceAuthService_GetProfile_FullMethodName            = "/registerface.FaceAuthService/GetProfile"
	FaceAuthService_UpdateProfile_FullMethodName         = "/registerface.FaceAuthService/UpdateProfile"
	FaceAuthService_EnrollFace_FullMethodName            = "/registerface.FaceAuthService/EnrollFace"
	FaceAuthService_DeleteAccount_FullMethodName         = "/registerface.FaceAuthService/DeleteAccount"
	FaceAuthService_ListUsers_FullMethodName             = "/registerface.FaceAuthService/ListUsers"
	FaceAuthService_RequestSnapshotUpload_FullMethodName = "/registerface.FaceAuthService/RequestSnapshotUpload"
	FaceAuthService_ConfirmSnapshotUpload_FullMethodName = "/registerface.FaceAuthService/ConfirmSnapshotUpload"
	FaceAuthService_GetSnapshotURL_FullMethodName        = "/registerface.FaceAuthService/GetSnapshotURL"
)

// FaceAuthServiceClient is the client API for FaceAuthService.
type FaceAuthServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error)
	EnrollFace(ctx context.Context, in *EnrollFaceRequest, opts ...grpc.CallOption) (*EnrollFaceResponse, error)
	DeleteAccount(ctx context.Context, in *DeleteAccountRequest, opts ...grpc.CallOption) (*DeleteAccountResponse, error)
	ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
	RequestSnapshotUpload(ctx context.Context, in *RequestSnapshotUploadRequest, opts ...grpc.CallOption) (*RequestSnapshotUploadResponse, error)
	ConfirmSnapshotUpload(ctx context.Context, in *ConfirmSnapshotUploadRequest, opts ...grpc.CallOption) (*ConfirmSnapshotUploadResponse, error)
	GetSnapshotURL(ctx context.Context, in *GetSnapshotURLRequest, opts ...grpc.CallOption) (*GetSnapshotURLResponse, error)
}

type faceAuthServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFaceAuthServiceClient wraps cc. Every call is sent with the JSON
// content-subtype, so the server picks the matching codec.
func NewFaceAuthServiceClient(cc grpc.ClientConnInterface) FaceAuthServiceClient {
	return &faceAuthServiceClient{cc}
}

func (c *faceAuthServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FaceAuthService_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *faceAuthServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FaceAuthService_Register_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *faceAuthServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FaceAuthService_Login_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *faceAuthServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	out := new(RefreshTokenResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FaceAuthService_RefreshToken_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *faceAuthServiceClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error) {
	out := new(GetProfileResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FaceAuthService_GetProfile_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *faceAuthServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error) {
	out := new(UpdateProfileResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FaceAuthService_UpdateProfile_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *faceAuthServiceClient) EnrollFace(ctx context.Context, in *EnrollFaceRequest, opts ...grpc.CallOption) (*EnrollFaceResponse, error) {
	out := new(EnrollFaceResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FaceAuthService_EnrollFace_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *faceAuthServiceClient) DeleteAccount(ctx context.Context, in *DeleteAccountRequest, opts ...grpc.CallOption) (*DeleteAccountResponse, error) {
	out := new(DeleteAccountResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FaceAuthService_DeleteAccount_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *faceAuthServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	out := new(ListUsersResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FaceAuthService_ListUsers_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *faceAuthServiceClient) RequestSnapshotUpload(ctx context.Context, in *RequestSnapshotUploadRequest, opts ...grpc.CallOption) (*RequestSnapshotUploadResponse, error) {
	out := new(RequestSnapshotUploadResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FaceAuthService_RequestSnapshotUpload_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *faceAuthServiceClient) ConfirmSnapshotUpload(ctx context.Context, in *ConfirmSnapshotUploadRequest, opts ...grpc.CallOption) (*ConfirmSnapshotUploadResponse, error) {
	out := new(ConfirmSnapshotUploadResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FaceAuthService_ConfirmSnapshotUpload_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *faceAuthServiceClient) GetSnapshotURL(ctx context.Context, in *GetSnapshotURLRequest, opts ...grpc.CallOption) (*GetSnapshotURLResponse, error) {
	out := new(GetSnapshotURLResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FaceAuthService_GetSnapshotURL_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// FaceAuthServiceServer is the server API for FaceAuthService.
// Implementations must embed UnimplementedFaceAuthServiceServer.
type FaceAuthServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error)
	EnrollFace(context.Context, *EnrollFaceRequest) (*EnrollFaceResponse, error)
	DeleteAccount(context.Context, *DeleteAccountRequest) (*DeleteAccountResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	RequestSnapshotUpload(context.Context, *RequestSnapshotUploadRequest) (*RequestSnapshotUploadResponse, error)
	ConfirmSnapshotUpload(context.Context, *ConfirmSnapshotUploadRequest) (*ConfirmSnapshotUploadResponse, error)
	GetSnapshotURL(context.Context, *GetSnapshotURLRequest) (*GetSnapshotURLResponse, error)
	mustEmbedUnimplementedFaceAuthServiceServer()
}

type UnimplementedFaceAuthServiceServer struct{}

func (UnimplementedFaceAuthServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func (UnimplementedFaceAuthServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}

func (UnimplementedFaceAuthServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func (UnimplementedFaceAuthServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}

func (UnimplementedFaceAuthServiceServer) GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProfile not implemented")
}

func (UnimplementedFaceAuthServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProfile not implemented")
}

func (UnimplementedFaceAuthServiceServer) EnrollFace(context.Context, *EnrollFaceRequest) (*EnrollFaceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EnrollFace not implemented")
}

func (UnimplementedFaceAuthServiceServer) DeleteAccount(context.Context, *DeleteAccountRequest) (*DeleteAccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteAccount not implemented")
}

func (UnimplementedFaceAuthServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListUsers not implemented")
}

func (UnimplementedFaceAuthServiceServer) RequestSnapshotUpload(context.Context, *RequestSnapshotUploadRequest) (*RequestSnapshotUploadResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RequestSnapshotUpload not implemented")
}

func (UnimplementedFaceAuthServiceServer) ConfirmSnapshotUpload(context.Context, *ConfirmSnapshotUploadRequest) (*ConfirmSnapshotUploadResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfirmSnapshotUpload not implemented")
}

func (UnimplementedFaceAuthServiceServer) GetSnapshotURL(context.Context, *GetSnapshotURLRequest) (*GetSnapshotURLResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSnapshotURL not implemented")
}

func (UnimplementedFaceAuthServiceServer) mustEmbedUnimplementedFaceAuthServiceServer() {}

func RegisterFaceAuthServiceServer(s grpc.ServiceRegistrar, srv FaceAuthServiceServer) {
	s.RegisterService(&FaceAuthService_ServiceDesc, srv)
}

func _FaceAuthService_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceAuthServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceAuthService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceAuthServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FaceAuthService_Register_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceAuthServiceServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceAuthService_Register_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceAuthServiceServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FaceAuthService_Login_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceAuthServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceAuthService_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceAuthServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FaceAuthService_RefreshToken_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RefreshTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceAuthServiceServer).RefreshToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceAuthService_RefreshToken_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceAuthServiceServer).RefreshToken(ctx, req.(*RefreshTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FaceAuthService_GetProfile_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceAuthServiceServer).GetProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceAuthService_GetProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceAuthServiceServer).GetProfile(ctx, req.(*GetProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FaceAuthService_UpdateProfile_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceAuthServiceServer).UpdateProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceAuthService_UpdateProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceAuthServiceServer).UpdateProfile(ctx, req.(*UpdateProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FaceAuthService_EnrollFace_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EnrollFaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceAuthServiceServer).EnrollFace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceAuthService_EnrollFace_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceAuthServiceServer).EnrollFace(ctx, req.(*EnrollFaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FaceAuthService_DeleteAccount_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceAuthServiceServer).DeleteAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceAuthService_DeleteAccount_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceAuthServiceServer).DeleteAccount(ctx, req.(*DeleteAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FaceAuthService_ListUsers_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListUsersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceAuthServiceServer).ListUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceAuthService_ListUsers_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceAuthServiceServer).ListUsers(ctx, req.(*ListUsersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FaceAuthService_RequestSnapshotUpload_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RequestSnapshotUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceAuthServiceServer).RequestSnapshotUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceAuthService_RequestSnapshotUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceAuthServiceServer).RequestSnapshotUpload(ctx, req.(*RequestSnapshotUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FaceAuthService_ConfirmSnapshotUpload_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ConfirmSnapshotUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceAuthServiceServer).ConfirmSnapshotUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceAuthService_ConfirmSnapshotUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceAuthServiceServer).ConfirmSnapshotUpload(ctx, req.(*ConfirmSnapshotUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FaceAuthService_GetSnapshotURL_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetSnapshotURLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FaceAuthServiceServer).GetSnapshotURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FaceAuthService_GetSnapshotURL_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FaceAuthServiceServer).GetSnapshotURL(ctx, req.(*GetSnapshotURLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var FaceAuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FaceAuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler:    _FaceAuthService_Ping_Handler,
		},
		{
			MethodName: "Register",
			Handler:    _FaceAuthService_Register_Handler,
		},
		{
			MethodName: "Login",
			Handler:    _FaceAuthService_Login_Handler,
		},
		{
			MethodName: "RefreshToken",
			Handler:    _FaceAuthService_RefreshToken_Handler,
		},
		{
			MethodName: "GetProfile",
			Handler:    _FaceAuthService_GetProfile_Handler,
		},
		{
			MethodName: "UpdateProfile",
			Handler:    _FaceAuthService_UpdateProfile_Handler,
		},
		{
			MethodName: "EnrollFace",
			Handler:    _FaceAuthService_EnrollFace_Handler,
		},
		{
			MethodName: "DeleteAccount",
			Handler:    _FaceAuthService_DeleteAccount_Handler,
		},
		{
			MethodName: "ListUsers",
			Handler:    _FaceAuthService_ListUsers_Handler,
		},
		{
			MethodName: "RequestSnapshotUpload",
			Handler:    _FaceAuthService_RequestSnapshotUpload_Handler,
		},
		{
			MethodName: "ConfirmSnapshotUpload",
			Handler:    _FaceAuthService_ConfirmSnapshotUpload_Handler,
		},
		{
			MethodName: "GetSnapshotURL",
			Handler:    _FaceAuthService_GetSnapshotURL_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "registerface/faceauth",
}
