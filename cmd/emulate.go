package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coreyhulse/chipforge/internal/audio"
	"github.com/coreyhulse/chipforge/internal/chip8"
	"github.com/coreyhulse/chipforge/internal/video"
)

const defaultBeepAsset = "assets/beep.mp3"

var (
	emulateSpeed         int
	emulateNoShiftQuirk  bool
	emulateBeepAssetPath string
)

// emulateCmd runs a CHIP-8 binary image through the interpreter loop
// against a pixelgl window, waiting for a quit event to exit.
var emulateCmd = &cobra.Command{
	Use:   "emulate <program>",
	Short: "run the chipforge emulator against a CHIP-8 binary image",
	Args:  cobra.ExactArgs(1),
	Run:   runEmulate,
}

func init() {
	emulateCmd.Flags().IntVar(&emulateSpeed, "speed", chip8.DefaultStepsPerSecond, "instruction throughput, in steps/second")
	emulateCmd.Flags().BoolVar(&emulateNoShiftQuirk, "no-shift-quirk", false, "disable the VY-copy-before-shift quirk for 8XY6/8XYE")
	emulateCmd.Flags().StringVar(&emulateBeepAssetPath, "beep-asset", defaultBeepAsset, "path to the mp3 asset played while the sound timer is active")
}

func runEmulate(cmd *cobra.Command, args []string) {
	romPath := args[0]

	rom, err := os.ReadFile(romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", romPath, err)
		os.Exit(1)
	}

	quirks := chip8.DefaultQuirks()
	quirks.ShiftFromVY = !emulateNoShiftQuirk

	vm := chip8.NewMachine(quirks)
	if err := vm.LoadROM(rom); err != nil {
		fmt.Fprintf(os.Stderr, "error loading %s: %v\n", romPath, err)
		os.Exit(1)
	}

	win, err := video.NewWindow("chipforge")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating window: %v\n", err)
		os.Exit(1)
	}

	sink, err := audio.NewSink(emulateBeepAssetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: audio disabled: %v\n", err)
		sink = nil
	} else {
		defer sink.Close()
	}

	if err := chip8.Run(vm, win, audioSinkOrNoop(sink), win, emulateSpeed); err != nil {
		fmt.Fprintf(os.Stderr, "emulator stopped: %v\n", err)
		os.Exit(1)
	}
}

// audioSinkOrNoop lets the emulator run with audio disabled (e.g. when
// the beep asset is missing) without special-casing nil everywhere.
func audioSinkOrNoop(sink *audio.Sink) chip8.AudioSink {
	if sink == nil {
		return noopAudioSink{}
	}
	return sink
}

type noopAudioSink struct{}

func (noopAudioSink) Resume() {}
func (noopAudioSink) Pause()  {}
