// internal/cli/validate.go
package mlmon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwiater/mlmon/internal/charts"
	"github.com/mwiater/mlmon/internal/report"
	"github.com/mwiater/mlmon/internal/util"
)

// maxErrorRunes bounds the error text printed per FAIL line.
const maxErrorRunes = 200

// validateCmd checks chart spec files without loading any records.
var validateCmd = &cobra.Command{
	Use:   "validate SPEC_FILE...",
	Short: "Check chart spec files against the schema and the chart rules",
	Long: `Validate one or more chart spec files. A file may hold a single spec object or
a JSON array of specs. Every spec is reported as PASS or FAIL and the command fails
when any spec is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(out io.Writer, paths []string) error {
	failures := 0
	for _, path := range paths {
		failures += validateFile(out, path)
	}
	if failures > 0 {
		return fmt.Errorf("%d invalid chart spec(s)", failures)
	}
	return nil
}

// validateFile reports every spec in path and returns the number of failures.
func validateFile(out io.Writer, path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		report.Validation(out, path, err)
		return 1
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			report.Validation(out, path, shorten(err))
			return 1
		}
		failures := 0
		for i, item := range items {
			_, err := charts.ParseSpec(item)
			report.Validation(out, fmt.Sprintf("%s[%d]", path, i), shorten(err))
			if err != nil {
				failures++
			}
		}
		return failures
	}

	_, err = charts.ParseSpec(data)
	report.Validation(out, path, shorten(err))
	if err != nil {
		return 1
	}
	return 0
}

func shorten(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s", util.TruncateRunes(err.Error(), maxErrorRunes))
}
