package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrServerURLRequired   = errors.New("server url is required")
	ErrInvalidFetchTimeout = errors.New("fetch timeout must be positive")
	ErrInvalidFetchLimit   = errors.New("fetch limit must be positive")
	ErrInvalidDebounce     = errors.New("search debounce must be positive")
	ErrInvalidLogFormat    = errors.New("invalid log format")

	ErrFailedToCreateRequest = errors.New("failed to create request")
	ErrServerUnreachable     = errors.New("server unreachable")
	ErrUnexpectedStatus      = errors.New("unexpected response status")
	ErrInvalidResponseBody   = errors.New("invalid response body")
	ErrUnauthorized          = errors.New("api key rejected")

	ErrLogDirNotExist    = errors.New("log directory does not exist")
	ErrInvalidLogPattern = errors.New("invalid log file pattern")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
