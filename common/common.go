package common

import (
	"os"
)

const (
	// AppID is the artifacts partition all owner data lives under.
	AppID = "home-bills-tracker-v1"

	// LocalOwnerID is the fixed identity used when the session runs in
	// local-only mode.
	LocalOwnerID = "local-demo-user"
)

var (
	// CtxKeys are the keys request-scoped values are stored under.
	CtxKeys = struct {
		OwnerID string
	}{
		OwnerID: "ownerId",
	}

	// ProjectID of the Firebase project backing remote mode. Empty when
	// the service runs without a cloud project.
	ProjectID string

	// Production flag indicating the service runs against the live project.
	Production bool
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	Production = ProjectID != "" && GetEnv("HOMEBILLS_ENV", "") == "production"
}

// GetEnv returns the value of the environment variable named by key, or
// fallback when it is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
