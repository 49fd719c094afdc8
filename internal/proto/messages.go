package proto

import "google.golang.org/protobuf/types/known/timestamppb"

// User is the public view of a registered user. The face descriptor never
// leaves the server, only whether one is enrolled.
type User struct {
	Id               string                 `json:"id"`
	Name             string                 `json:"name"`
	Email            string                 `json:"email"`
	RegistrationDate *timestamppb.Timestamp `json:"registration_date,omitempty"`
	LastLogin        *timestamppb.Timestamp `json:"last_login,omitempty"`
	HasFace          bool                   `json:"has_face"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	FaceData string `json:"face_data,omitempty"`
}

type RegisterResponse struct {
	User *User `json:"user"`
}

type LoginRequest struct {
	Id       string `json:"id"`
	FaceData string `json:"face_data"`
}

type LoginResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	Similarity   float64 `json:"similarity"`
	User         *User   `json:"user"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type GetProfileRequest struct{}

type GetProfileResponse struct {
	User *User `json:"user"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateProfileResponse struct {
	User *User `json:"user"`
}

type EnrollFaceRequest struct {
	FaceData string `json:"face_data"`
}

type EnrollFaceResponse struct {
	User *User `json:"user"`
}

type DeleteAccountRequest struct{}

type DeleteAccountResponse struct{}

type ListUsersRequest struct {
	Limit  int32 `json:"limit,omitempty"`
	Offset int32 `json:"offset,omitempty"`
}

type ListUsersResponse struct {
	Users []*User `json:"users"`
}

type RequestSnapshotUploadRequest struct {
	Kind string `json:"kind"`
}

type RequestSnapshotUploadResponse struct {
	SnapshotId string `json:"snapshot_id"`
	UploadUrl  string `json:"upload_url"`
}

type ConfirmSnapshotUploadRequest struct {
	SnapshotId string `json:"snapshot_id"`
}

type ConfirmSnapshotUploadResponse struct{}

type GetSnapshotURLRequest struct {
	Kind string `json:"kind"`
}

type GetSnapshotURLResponse struct {
	Url string `json:"url"`
}
