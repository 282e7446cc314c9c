package version

import (
	"fmt"
	"runtime"
)

// Set through -ldflags "-X github.com/harlequix/hamming3126/version.GitCommit=..." at build time.
var (
	BuildDate = "unknown"
	GitCommit = "unknown"
	Version   = "dev"
	GoVersion = runtime.Version()
	OsArch    = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)
