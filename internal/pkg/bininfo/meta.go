package bininfo

// Populated by -ldflags at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
)
