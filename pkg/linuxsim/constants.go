package linuxsim

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Session ended normally
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitServerError  = 11 // HTTP server failed
)

const (
	// RootPath is the path of the filesystem root.
	RootPath = "/"

	// DefaultHome is the directory cd returns to without an operand.
	DefaultHome = "/home/user"

	// DefaultUser is the simulated login name.
	DefaultUser = "user"

	// DefaultHostname is the simulated machine name.
	DefaultHostname = "linuxsim"

	// DefaultSystemName is printed by uname.
	DefaultSystemName = "LinuxSim"

	// DefaultSystemInfo is printed by uname -a.
	DefaultSystemInfo = "LinuxSim 1.0.0 Web 2025 Go x86_64"

	// DirectorySize is the size ls -l reports for directories.
	DirectorySize = 4096

	// DefaultServerAddr is the listen address for linuxsim serve.
	DefaultServerAddr = ":8080"

	// DefaultSessionTTL is how long an idle HTTP session survives.
	DefaultSessionTTL = 30 * time.Minute

	// DefaultMaxSessions caps concurrently open HTTP sessions.
	DefaultMaxSessions = 256
)
