package main

// Exit codes.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (bad config file, missing binary)
	ExitDataError   = 3 // Data error (malformed input, nothing valid to render)
	ExitFetchError  = 4 // Remote fetch failed (sheet export, style, locale)
)
