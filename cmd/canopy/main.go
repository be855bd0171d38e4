// Command canopy renders an HTML-like document to a terminal window,
// driving it through the markup -> style -> layout -> raster pipeline
// and redrawing on a timer as the pipeline produces new frames.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/canopy/pipeline"
	"github.com/npillmayer/canopy/window"
	"github.com/spf13/cobra"
)

var (
	viewportWidth  float64
	channelBuffer  int
	stylesheetPath string
)

var rootCmd = &cobra.Command{
	Use:   "canopy <file.html>",
	Short: "A minimal pipelined browser-style rendering engine for the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("canopy: reading %s: %w", args[0], err)
		}

		pipe := pipeline.New(pipeline.Config{
			ViewportWidth:         viewportWidth,
			ChannelBuffer:         channelBuffer,
			DefaultStylesheetPath: stylesheetPath,
		})
		pipe.Run()
		defer pipe.Shutdown()

		if _, err := pipe.Submit(string(source)); err != nil {
			return fmt.Errorf("canopy: submitting %s: %w", args[0], err)
		}

		return window.Run(pipe)
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().Float64Var(&viewportWidth, "viewport-width", 1280, "logical viewport width in pixels")
	rootCmd.Flags().IntVar(&channelBuffer, "channel-buffer", 4, "buffer length of every inter-stage pipeline channel")
	rootCmd.Flags().StringVar(&stylesheetPath, "stylesheet", "", "path to the user-agent default stylesheet (overrides the built-in default)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "canopy: %v\n", err)
		os.Exit(1)
	}
}
