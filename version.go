package lox

// Set at build time via -ldflags.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)
