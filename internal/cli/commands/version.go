package commands

import (
	"github.com/spf13/cobra"
)

// buildVersion is overridden at build time via -ldflags
var buildVersion = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the deploywatch version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("deploywatch " + buildVersion)
	},
}
