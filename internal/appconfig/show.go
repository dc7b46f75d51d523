package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, cfg Config) {
	if cfg.ConfigPath == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", cfg.ConfigPath)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:              %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Pretty:             %v\n", cfg.Pretty)
	fmt.Fprintf(out, "  Log File:           %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Log Level:          %s\n", cfg.EffectiveLogLevel())
	fmt.Fprintf(out, "  Log Format:         %s\n", cfg.LogFormat)
	fmt.Fprintf(out, "  Default Bin Method: %s\n", cfg.DefaultBinMethod)
	fmt.Fprintf(out, "  Default Bin Number: %d\n", cfg.DefaultBinNumber)
	if cfg.OutputDir != "" {
		fmt.Fprintf(out, "  Output Dir:         %s\n", cfg.OutputDir)
	}
}
