package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bnema/pdfbatch/config"
	"github.com/bnema/pdfbatch/internal/adapter/engine/image"
	"github.com/bnema/pdfbatch/internal/adapter/engine/office"
	"github.com/bnema/pdfbatch/internal/adapter/engine/pdfcopy"
	sqlitestore "github.com/bnema/pdfbatch/internal/adapter/storage/sqlite"
	"github.com/bnema/pdfbatch/internal/display"
	"github.com/bnema/pdfbatch/internal/domain"
	"github.com/bnema/pdfbatch/internal/infrastructure/logger"
	"github.com/bnema/pdfbatch/internal/port"
	"github.com/bnema/pdfbatch/internal/service"
)

var (
	flagInput    string
	flagOutput   string
	flagFlatten  bool
	flagImageDPI int
	flagWorkers  int
	flagManifest string
	flagVerbose  bool
	flagNoColor  bool
)

// exitCode carries the batch outcome out of RunE; pre-flight failures
// surface as errors and exit 2 instead.
var exitCode int

var rootCmd = &cobra.Command{
	Use:          "pdfbatch",
	Short:        "Convert all supported files under the input directory to PDF",
	Long:         "pdfbatch converts office documents, images and existing PDFs under an input directory into normalized PDF output, preserving or flattening the directory hierarchy.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagInput, "input", "", "input directory (default: env PDFBATCH_INPUT or 'input')")
	rootCmd.Flags().StringVar(&flagOutput, "output", "", "output directory (default: env PDFBATCH_OUTPUT or 'output')")
	rootCmd.Flags().BoolVar(&flagFlatten, "flatten", false, "place all PDFs directly under the output directory")
	rootCmd.Flags().IntVar(&flagImageDPI, "image-dpi", 0, "DPI for image to PDF conversion (default: 200)")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "image/pdf worker pool size (default: 2x cores, capped)")
	rootCmd.Flags().StringVar(&flagManifest, "manifest", "", "sqlite run-manifest path (default: disabled)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

func run(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(flagVerbose)
	if flagNoColor {
		color.NoColor = true
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var manifest port.Manifest
	if cfg.ManifestPath != "" {
		manifest, err = sqlitestore.NewManifest(cfg.ManifestPath)
		if err != nil {
			return err
		}
		defer func() { _ = manifest.Close() }()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	display.Banner(os.Stdout, cfg.InputDir, cfg.OutputDir, cfg.Flatten, cfg.ImageDPI)

	runner := &service.Runner{
		InputRoot:  cfg.InputDir,
		OutputRoot: cfg.OutputDir,
		Flatten:    cfg.Flatten,
		ImageDPI:   cfg.ImageDPI,
		Workers:    cfg.Workers,
		JobTimeout: cfg.JobTimeout,
		Engines: map[domain.Category]port.Engine{
			domain.CategoryOffice: office.New(cfg.JobTimeout),
			domain.CategoryImage:  image.New(cfg.ImageDPI, 2*time.Minute),
			domain.CategoryPdf:    pdfcopy.New(),
		},
		Manifest: manifest,
		Progress: true,
	}

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	display.Summary(os.Stdout, report)
	exitCode = report.ExitCode()
	return nil
}

// applyFlags lets explicitly set flags win over environment defaults.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if flagInput != "" {
		cfg.InputDir = flagInput
	}
	if flagOutput != "" {
		cfg.OutputDir = flagOutput
	}
	if cmd.Flags().Changed("flatten") {
		cfg.Flatten = flagFlatten
	}
	if cmd.Flags().Changed("image-dpi") {
		cfg.ImageDPI = flagImageDPI
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if flagManifest != "" {
		cfg.ManifestPath = flagManifest
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("run aborted")
		os.Exit(2)
	}
	os.Exit(exitCode)
}
