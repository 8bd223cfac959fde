package config

import "time"

// app constants
const (
	AppName = "trailview"
	Version = "0.3.0"

	ConfigFileName = "trailview.yaml"
	EnvFileName    = ".env"
)

// server constants
const (
	DefaultServerURL    = "http://localhost:7889"
	DefaultFetchTimeout = 10 * time.Second
)

// logs constants
const (
	DefaultFetchLimit = 100
	DefaultLogPattern = "*.log"

	WatchDebounce = 500 * time.Millisecond
)

// search constants
const (
	DefaultSearchDebounce = 400 * time.Millisecond
	MinQueryLength        = 3
)

// logging constants
const (
	DefaultLogLevel = "info"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
	DefaultLogFormat = LogFormatConsole
)
