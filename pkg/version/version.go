package version

// Overridden at build time with -ldflags "-X github.com/alts-client/devstatus/pkg/version.version=...".
var version = "0.0.0-dev"

func Version() string {
	return version
}
