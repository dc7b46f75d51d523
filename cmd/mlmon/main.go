// cmd/mlmon/main.go
package main

import (
	"fmt"
	"os"

	"github.com/mwiater/mlmon/internal/appconfig"
	cmd "github.com/mwiater/mlmon/internal/cli"
	"github.com/mwiater/mlmon/internal/logging"
)

// Build metadata, stamped with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	loadEnv        = appconfig.LoadEnv
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
	closeLogging   = logging.Close
	exit           = os.Exit
)

// main loads .env overrides, runs the cobra root command and exits with its
// status code.
func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		exit(1)
		return
	}
	setVersionInfo(version, commit, date)

	code := executeCmd()
	if err := closeLogging(); err != nil {
		fmt.Fprintln(os.Stderr, "Error closing log file:", err)
	}
	exit(code)
}
