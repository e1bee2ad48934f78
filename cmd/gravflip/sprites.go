package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravflip/internal/sprites"
)

var flagSpriteOut string

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "Write the player sprite strip",
	Long: `Write the 3-frame player sprite strip as a PNG. The window frontend
can load an edited copy with 'play --window --sprites <file>'.`,
	Run: runSprites,
}

func init() {
	spritesCmd.Flags().StringVarP(&flagSpriteOut, "output", "o", "player.png", "Output PNG path")
}

func runSprites(_ *cobra.Command, _ []string) {
	if err := sprites.Save(flagSpriteOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %dx%d strip to %s\n", sprites.FrameSize*sprites.FrameCount, sprites.FrameSize, flagSpriteOut)
}
