package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/coreyhulse/chipforge/cmd"
)

func main() {
	// pixelgl needs access to the main thread so this pattern is suggested
	// will revisit once things are working
	pixelgl.Run(cmd.Execute)
}
