package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/hr-diagram/internal/chart"
	"github.com/ytget/hr-diagram/internal/config"
	"github.com/ytget/hr-diagram/internal/hrd"
	"github.com/ytget/hr-diagram/internal/locale"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// errRenderFailed reports that the pass produced error messages
var errRenderFailed = errors.New("render produced errors")

type renderOptions struct {
	name     string
	logTeff  float64
	logL     float64
	dataDir  string
	outDir   string
	format   string
	width    int
	height   int
	language string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     "hr-render",
		Short:   "Render HR diagram charts for one star without the GUI",
		Long:    "Overlays a star on the evolutionary tracks for metallicities 0.008 and 0.019\nand writes one chart per table to the output directory.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
		SilenceUsage: true,
	}

	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "", "star name (nothing is rendered while empty)")
	f.Float64Var(&opts.logTeff, "log-teff", 0, "log10 effective temperature")
	f.Float64Var(&opts.logL, "log-l", 0, "log10 luminosity")
	f.StringVar(&opts.dataDir, "data-dir", config.DefaultDataDir, "directory holding the track CSV files")
	f.StringVar(&opts.outDir, "out-dir", ".", "directory the charts are written to")
	f.StringVar(&opts.format, "format", string(config.DefaultExportFormat), "output format: png or svg")
	f.IntVar(&opts.width, "width", config.DefaultChartWidth, "chart width in pixels")
	f.IntVar(&opts.height, "height", config.DefaultChartHeight, "chart height in pixels")
	f.StringVar(&opts.language, "lang", "en", "message language: en, ru or pt")

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	format, err := chart.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	localization := locale.NewLocalization()
	localization.SetLanguage(opts.language)

	store := config.NewMemoryInputStore()
	store.SetString(config.InputStarName, opts.name)
	store.SetFloat(config.InputLogTeff, opts.logTeff)
	store.SetFloat(config.InputLogL, opts.logL)

	out := hrd.NewPipeline(opts.dataDir).RunInputs(store)
	if out.IsEmpty() {
		fmt.Fprintln(cmd.OutOrStdout(), localization.GetText(locale.KeyMsgEnterStar))
		return nil
	}

	for _, m := range out.Messages() {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", m.Level, m.Text(localization))
	}

	if len(out.Figures()) > 0 {
		paths, err := chart.Export(out, opts.outDir, format, chart.Options{Width: opts.width, Height: opts.height})
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		if err != nil {
			log.Printf("[hr-render] %s: export failed: %v", out.PassID, err)
			return err
		}
	}

	if out.HasErrors() {
		return errRenderFailed
	}
	return nil
}
