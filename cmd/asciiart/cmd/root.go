/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/go-asciiart"
	"github.com/spf13/cobra"
)

type options struct {
	file     string
	output   string
	cols     int
	scale    float64
	levels   int
	enhance  bool
	gamma    float64
	maxWidth int
	resample string
	strict   bool
	print    bool
}

var verbose bool
var opts options

func init() {
	log.SetHandler(clihander.New(os.Stdout))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")

	rootCmd.Flags().StringVarP(&opts.file, "file", "f", "", "Source image path")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "output.txt", "Destination text file (- for stdout)")
	rootCmd.Flags().IntVar(&opts.cols, "cols", asciiart.DefaultColumns, "Number of output columns")
	rootCmd.Flags().Float64Var(&opts.scale, "scale", asciiart.DefaultScale, "Tile height to width ratio")
	rootCmd.Flags().IntVar(&opts.levels, "levels", int(asciiart.LevelMedium), "Character density: 0=simple, 1=medium, 2=complex")
	rootCmd.Flags().BoolVar(&opts.enhance, "enhance", false, "Apply image enhancement")
	rootCmd.Flags().Float64Var(&opts.gamma, "gamma", asciiart.DefaultGamma, "Gamma correction (1.0 disables)")
	rootCmd.Flags().IntVar(&opts.maxWidth, "max-width", asciiart.DefaultMaxWidth, "Downscale images wider than this many pixels")
	rootCmd.Flags().StringVar(&opts.resample, "resample", asciiart.ResampleLanczos.String(), "Resize filter (lanczos, bicubic, bilinear, nearest, catmullrom)")
	rootCmd.Flags().BoolVar(&opts.strict, "strict", false, "Do not clamp columns to the image width; too many columns then fails instead of being narrowed")
	rootCmd.Flags().BoolVarP(&opts.print, "print", "p", false, "Also print the result to stdout")
	rootCmd.MarkFlagRequired("file")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "asciiart",
	Short: "Convert an image into ASCII art",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {

		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if opts.output == "-" { // keep stdout clean for the art
			log.SetHandler(clihander.New(os.Stderr))
		}

		log.Info("Generating enhanced ASCII art...")
		log.Infof("Settings: cols=%d, scale=%g, levels=%d, enhance=%t, gamma=%g",
			opts.cols, opts.scale, opts.levels, opts.enhance, opts.gamma)

		canvas, err := convert(opts)
		if err != nil {
			var serr *asciiart.SizeError
			if errors.As(err, &serr) {
				logGrid(serr.Grid)
				log.Warn("Image too small for specified columns.")
				log.Warn("Conversion failed. Try using fewer columns or a larger image.")
				return
			}
			log.Fatalf("Failed to convert image: %v", err)
		}

		if err := canvas.WriteFile(opts.output); err != nil {
			log.Fatalf("Failed to write ASCII art: %v", err)
		}

		if opts.print && opts.output != "-" {
			for _, row := range canvas.Crop(asciiart.TerminalWidth(os.Stdout)) {
				fmt.Println(row)
			}
		}

		log.Infof("ASCII art has been written to: %s", opts.output)
	},
}

// convert builds the converter from the command line options and runs it
func convert(o options) (*asciiart.Canvas, error) {
	level, err := asciiart.ParseLevel(o.levels)
	if err != nil {
		return nil, err
	}

	resample, err := asciiart.ParseResample(o.resample)
	if err != nil {
		return nil, err
	}

	img, err := asciiart.Open(o.file)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"file":      o.file,
		"max_width": o.maxWidth,
		"resample":  resample,
		"strict":    o.strict,
	}).Debug("Converting")

	canvas, err := img.Columns(o.cols).
		Scale(o.scale).
		Levels(level).
		Enhance(o.enhance).
		Gamma(o.gamma).
		MaxWidth(o.maxWidth).
		Resample(resample).
		Strict(o.strict).
		Convert()
	if err != nil {
		return nil, err
	}

	logGrid(canvas.Grid)

	return canvas, nil
}

func logGrid(g asciiart.Grid) {
	log.Infof("Processed image size: %dx%d", g.Width, g.Height)
	log.Infof("columns: %d, rows: %d", g.Columns, g.Rows)
	log.Infof("tile dims: %.1f x %.1f", g.TileWidth, g.TileHeight)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
