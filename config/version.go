package config

// Build metadata, filled in at build time via -ldflags.
var (
	Version   string
	Commit    string
	Branch    string
	BuildDate string
)
