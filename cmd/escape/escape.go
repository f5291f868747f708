package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/escape-time/pkg/bridge"
	"github.com/willbeason/escape-time/pkg/bufferio"
)

const (
	flagWidth   = "width"
	flagHeight  = "height"
	flagScale   = "scale"
	flagIters   = "iters"
	flagWorkers = "workers"
	flagFormat  = "format"
	flagOut     = "out"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escape X_CENTER Y_CENTER",
		Short: "Render Mandelbrot escape counts for a region of the complex plane",
		Long: `Render Mandelbrot escape counts for a region of the complex plane.

The frame is centered on X_CENTER + Y_CENTER*i and is --scale units wide.
Counts are written row-major from the top-left pixel.`,
		Args: cobra.ExactArgs(2),
		RunE: runCmd,
	}

	cmd.Flags().Int(flagWidth, 1920, "frame width in pixels")
	cmd.Flags().Int(flagHeight, 1080, "frame height in pixels")
	// Kept as a string so the value reaches the parser exactly as written.
	cmd.Flags().String(flagScale, "4", "width of the frame in the complex plane")
	cmd.Flags().Uint32(flagIters, 2000, "maximum iterations before a point is considered in the set")
	cmd.Flags().Int(flagWorkers, 0, "rendering goroutines, 0 for one per CPU")
	cmd.Flags().String(flagFormat, string(bufferio.Raw), "output format: raw or text")
	cmd.Flags().StringP(flagOut, "o", "-", "output file, - for stdout")

	return cmd
}

func runCmd(cmd *cobra.Command, args []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	flags := cmd.Flags()

	width, err := flags.GetInt(flagWidth)
	if err != nil {
		return err
	}
	height, err := flags.GetInt(flagHeight)
	if err != nil {
		return err
	}
	scale, err := flags.GetString(flagScale)
	if err != nil {
		return err
	}
	maxIter, err := flags.GetUint32(flagIters)
	if err != nil {
		return err
	}
	workers, err := flags.GetInt(flagWorkers)
	if err != nil {
		return err
	}
	formatName, err := flags.GetString(flagFormat)
	if err != nil {
		return err
	}
	out, err := flags.GetString(flagOut)
	if err != nil {
		return err
	}

	format, err := bufferio.ParseFormat(formatName)
	if err != nil {
		return err
	}

	f, err := bridge.Parse(width, height, args[0], args[1], scale, maxIter)
	if err != nil {
		return err
	}
	f.Workers = workers

	start := time.Now()
	buffer, err := f.Render()
	if err != nil {
		return err
	}
	cmd.PrintErrf("Rendered %dx%d frame in %v\n", f.Width, f.Height, time.Since(start))

	if out == "-" {
		return bufferio.Write(cmd.OutOrStdout(), format, f.Width, buffer)
	}

	return writeFile(out, func(w io.Writer) error {
		return bufferio.Write(w, format, f.Width, buffer)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = write(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
