package authkit

import "errors"

var (
	// ErrNoAccessToken is an exported constant or variable used by the session client.
	ErrNoAccessToken = errors.New("no access token received")
	// ErrBuilderReused is an exported constant or variable used by the session client.
	ErrBuilderReused = errors.New("builder has already been built")
	// ErrMissingBaseURL is an exported constant or variable used by the session client.
	ErrMissingBaseURL = errors.New("base URL is required")
	// ErrMissingTokenStore is an exported constant or variable used by the session client.
	ErrMissingTokenStore = errors.New("token store is required: set Config.DataDir and Config.DeviceSecret or provide one with WithTokenStore")
)
