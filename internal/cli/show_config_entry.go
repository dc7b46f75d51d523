package mlmon

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/mlmon/internal/appconfig"
)

func runShowConfig(cmd *cobra.Command) {
	appconfig.ShowConfig(cmd.OutOrStdout(), getConfig())
}
