// internal/cli/output.go
package mlmon

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/mwiater/mlmon/internal/appconfig"
	"github.com/mwiater/mlmon/internal/logging"
	"github.com/mwiater/mlmon/internal/prediction"
	"github.com/mwiater/mlmon/internal/util"
)

// loadRecords reads the records file every data command starts from.
func loadRecords(path string) ([]prediction.Record, error) {
	if path == "" {
		return nil, fmt.Errorf("records file is required (pass --records)")
	}
	records, err := prediction.LoadFile(path)
	if err != nil {
		return nil, err
	}
	l := logging.Logger()
	l.Info().Str("path", path).Int("records", len(records)).Msg("records loaded")
	return records, nil
}

// resolveOutput places relative output paths under the configured output
// directory.
func resolveOutput(cfg appconfig.Config, path string) string {
	if path == "" || cfg.OutputDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.OutputDir, path)
}

// emit writes v as JSON to outputPath, or to out when no path is given. With
// pretty output enabled the terminal summary replaces the JSON on out.
func emit(out io.Writer, cfg appconfig.Config, outputPath string, v any, summary func(io.Writer)) error {
	if path := resolveOutput(cfg, outputPath); path != "" {
		if err := util.WriteJSON(path, v); err != nil {
			return err
		}
		fmt.Fprintf(out, "Output written to %s\n", path)
		if cfg.Pretty && summary != nil {
			summary(out)
		}
		return nil
	}

	if cfg.Pretty && summary != nil {
		summary(out)
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("unable to encode output: %w", err)
	}
	return nil
}
