package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped via -ldflags at release time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the sprout version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("sprout %s\n", version)
	},
}
