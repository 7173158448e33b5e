package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd returns the caller's installed chipforge version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Retrieve the currently installed chipforge version",
	Long:  "Run `chipforge version` to get your current chipforge version",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(currentReleaseVersion)
}
