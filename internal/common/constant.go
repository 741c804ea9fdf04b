package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// MaxFileSize is the default upper bound for a single file transfer payload
// (decoded bytes).
const MaxFileSize = 5 * 1024 * 1024
