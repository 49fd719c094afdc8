// Package common contains shared constants and sentinel errors used across
// registerface components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Session keys persisted by the client between runs.
const (
	SessionUserID       = "user_id"
	SessionAccessToken  = "access_token"
	SessionRefreshToken = "refresh_token"
)
