// Package cmd implements chipforge's command-line interface: the
// "assemble" and "emulate" subcommands over internal/assembler and
// internal/chip8, plus a "version" subcommand.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// currentReleaseVersion is used to print the version the user currently has downloaded
const currentReleaseVersion = "v0.1.0"

// rootCmd is the base for all commands.
var rootCmd = &cobra.Command{
	Use:   "chipforge [command]",
	Short: "chipforge is a CHIP-8 assembler and emulator",
	Long:  "chipforge is a CHIP-8 assembler and emulator",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stderr, "Unknown command. Try `chipforge help` for more information")
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(emulateCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs chipforge according to the user's command/subcommand/flags
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
