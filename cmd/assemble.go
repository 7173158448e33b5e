package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coreyhulse/chipforge/internal/assembler"
)

const defaultAssembleTarget = "output.ch8"

// assembleCmd reads a CHIP-8 assembly source file and writes the
// assembled binary image to disk.
var assembleCmd = &cobra.Command{
	Use:   "assemble <source> [<target>]",
	Short: "assemble a CHIP-8 program into a binary image",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runAssemble,
}

func runAssemble(cmd *cobra.Command, args []string) {
	sourcePath := args[0]
	targetPath := defaultAssembleTarget
	if len(args) == 2 {
		targetPath = args[1]
	}

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", sourcePath, err)
		os.Exit(1)
	}

	binary, err := assembler.Assemble(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error assembling %s:\n%v\n", sourcePath, err)
		os.Exit(1)
	}

	if err := os.WriteFile(targetPath, binary, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", targetPath, err)
		os.Exit(1)
	}

	fmt.Printf("assembled %s -> %s (%d bytes)\n", sourcePath, targetPath, len(binary))
}
