// internal/cli/root.go
package mlmon

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/mlmon/internal/appconfig"
	"github.com/mwiater/mlmon/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:           "mlmon",
	Short:         "mlmon: chart data and model metrics from monitored prediction records",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file, environment or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		for _, name := range []string{"debug", "pretty"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(name)
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > env > config > defaults). This gives other packages a stable snapshot.
		cfg, err := appconfig.FromViper(viper.GetViper())
		if err != nil {
			return err
		}
		currentConfig = &cfg

		opts := logging.Options{Level: cfg.EffectiveLogLevel(), Format: cfg.LogFormat}
		if cfg.Debug {
			opts.Console = cmd.ErrOrStderr()
		}
		if err := logging.Configure(cfg.LogFilePath(), opts); err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}
		logging.Debugf("config loaded from %q", cfg.ConfigPath)
		return nil
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		l := logging.Logger()
		l.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}

// SetVersionInfo stamps the build metadata reported by --version.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

func init() {
	// --config (defaults to the standard path)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("pretty", false, "print terminal summaries instead of JSON")
	rootCmd.PersistentFlags().String("log-file", "", "path of the JSON log file")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("pretty", rootCmd.PersistentFlags().Lookup("pretty"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("log-file"))
}

// ensureConfigLoaded registers defaults and environment overrides, then reads
// the config file if there is one.
func ensureConfigLoaded() error {
	appconfig.Prepare(viper.GetViper(), cfgFile)
	return appconfig.Read(viper.GetViper())
}

// getConfig returns the loaded application configuration, falling back to
// defaults when no command has run yet.
func getConfig() appconfig.Config {
	if currentConfig == nil {
		return appconfig.Defaults()
	}
	return *currentConfig
}
