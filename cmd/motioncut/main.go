// Package main provides the CLI entry point for motioncut.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/motioncut/internal/config"
	"github.com/mkarlsen/motioncut/internal/discovery"
	"github.com/mkarlsen/motioncut/internal/logging"
	"github.com/mkarlsen/motioncut/internal/processing"
	"github.com/mkarlsen/motioncut/internal/reporter"
	"github.com/mkarlsen/motioncut/internal/roi"
	"github.com/mkarlsen/motioncut/internal/util"
)

const (
	appName    = "motioncut"
	appVersion = "0.3.0"
)

// scanArgs holds the parsed flags for the scan command.
type scanArgs struct {
	inputPath  string
	outputDir  string
	logDir     string
	configFile string

	region         string
	threshold      int
	minContourArea int
	sensitivity    float64
	frameSkip      int

	paddingBefore   float64
	paddingAfter    float64
	mergeGap        float64
	minClipDuration float64
	codec           string
	ext             string

	jsonOutput bool
	verbose    bool
	noLog      bool
}

func main() {
	root := &cobra.Command{
		Use:     appName,
		Short:   "Motion detection and clip extraction for video files",
		Version: appVersion,
		Long: `Motioncut scans video files for motion inside a region of interest,
merges nearby motion bursts, and exports each burst as a padded clip.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newScanCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newScanCommand() *cobra.Command {
	var sa scanArgs

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan video files for motion and export clips",
		Long: `Scan a video file, or every video file in a directory, for motion
inside the configured region of interest. Each merged motion burst is
exported as a padded clip into the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sa.inputPath == "" {
				return fmt.Errorf("input path is required (-i/--input)")
			}
			if sa.outputDir == "" {
				return fmt.Errorf("output directory is required (-o/--output)")
			}
			return executeScan(cmd, sa)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&sa.inputPath, "input", "i", "", "Input video file or directory")
	f.StringVarP(&sa.outputDir, "output", "o", "", "Output directory for exported clips")
	f.StringVarP(&sa.logDir, "log-dir", "l", "", "Log directory (defaults to OUTPUT/logs)")
	f.StringVarP(&sa.configFile, "config", "c", "", "YAML config file")

	f.StringVar(&sa.region, "roi", "", "Region of interest as x1,y1,x2,y2 (any two opposite corners)")
	f.IntVar(&sa.threshold, "threshold", config.DefaultThreshold, "Pixel difference threshold (0-255)")
	f.IntVar(&sa.minContourArea, "min-contour-area", config.DefaultMinContourArea, "Minimum contour area in px^2")
	f.Float64Var(&sa.sensitivity, "sensitivity", config.DefaultSensitivity, "Changed fraction of region required (0.0-1.0)")
	f.IntVar(&sa.frameSkip, "frame-skip", config.DefaultFrameSkip, "Score every Nth frame")

	f.Float64Var(&sa.paddingBefore, "padding-before", config.DefaultPaddingBeforeSecs, "Seconds of lead-in before each clip")
	f.Float64Var(&sa.paddingAfter, "padding-after", config.DefaultPaddingAfterSecs, "Seconds of tail after each clip")
	f.Float64Var(&sa.mergeGap, "merge-gap", config.DefaultMergeGapSecs, "Merge segments separated by at most this many seconds")
	f.Float64Var(&sa.minClipDuration, "min-clip-duration", config.DefaultMinClipDurationSecs, "Advisory minimum clip length in seconds")
	f.StringVar(&sa.codec, "codec", config.DefaultOutputCodec, "FOURCC codec for exported clips")
	f.StringVar(&sa.ext, "ext", config.DefaultOutputExt, "Container extension for exported clips")

	f.BoolVar(&sa.jsonOutput, "json", false, "Emit NDJSON events instead of terminal output")
	f.BoolVarP(&sa.verbose, "verbose", "v", false, "Enable verbose logging")
	f.BoolVar(&sa.noLog, "no-log", false, "Disable log file creation")

	return cmd
}

func executeScan(cmd *cobra.Command, sa scanArgs) error {
	inputPath, err := filepath.Abs(sa.inputPath)
	if err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}

	inputInfo, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("input path does not exist: %s", inputPath)
	}

	outputDir, err := filepath.Abs(sa.outputDir)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if err := util.EnsureDirectory(outputDir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	logDir := sa.logDir
	if logDir == "" {
		logDir = filepath.Join(outputDir, "logs")
	}

	logger, err := logging.Setup(logDir, sa.verbose, sa.noLog)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	// Build configuration: defaults, then config file, then explicit flags.
	cfg := config.NewConfig(inputPath, outputDir, logDir)

	if sa.configFile != "" {
		if err := config.LoadFile(sa.configFile, &cfg); err != nil {
			return err
		}
		logger.Info("Loaded config file: %s", sa.configFile)
	}

	if err := applyFlagOverrides(cmd, sa, &cfg); err != nil {
		return err
	}
	cfg.OutputDir = outputDir
	cfg.LogDir = logDir

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Discover files to process
	var filesToProcess []string
	if inputInfo.IsDir() {
		filesToProcess, err = discovery.FindVideoFilesWithLogging(inputPath, logger)
		if err != nil {
			return err
		}
	} else {
		filesToProcess = []string{inputPath}
		logger.Info("Processing single file: %s", inputPath)
	}

	logger.Info("Output directory: %s", outputDir)
	logger.Info("Region of interest: %+v", cfg.ROI)
	logger.Info("Detection: threshold=%d, min-contour-area=%d, sensitivity=%g, frame-skip=%d",
		cfg.Threshold, cfg.MinContourArea, cfg.Sensitivity, cfg.FrameSkip)
	logger.Info("Export: padding=%g/%gs, merge-gap=%gs, codec=%s%s",
		cfg.PaddingBeforeSecs, cfg.PaddingAfterSecs, cfg.MergeGapSecs, cfg.OutputCodec, cfg.OutputExt)

	var rep reporter.Reporter
	if sa.jsonOutput {
		rep = reporter.NewJSONReporter()
	} else {
		rep = reporter.NewTerminalReporter()
	}

	// Setup context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	_, err = processing.ScanVideos(ctx, cfg, filesToProcess, rep, logger)
	return err
}

// applyFlagOverrides copies explicitly set flags onto cfg so they win over
// config file values.
func applyFlagOverrides(cmd *cobra.Command, sa scanArgs, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("roi") {
		r, err := parseRegion(sa.region)
		if err != nil {
			return err
		}
		cfg.ROI = r
	}
	if flags.Changed("threshold") {
		cfg.Threshold = sa.threshold
	}
	if flags.Changed("min-contour-area") {
		cfg.MinContourArea = sa.minContourArea
	}
	if flags.Changed("sensitivity") {
		cfg.Sensitivity = sa.sensitivity
	}
	if flags.Changed("frame-skip") {
		cfg.FrameSkip = sa.frameSkip
	}
	if flags.Changed("padding-before") {
		cfg.PaddingBeforeSecs = sa.paddingBefore
	}
	if flags.Changed("padding-after") {
		cfg.PaddingAfterSecs = sa.paddingAfter
	}
	if flags.Changed("merge-gap") {
		cfg.MergeGapSecs = sa.mergeGap
	}
	if flags.Changed("min-clip-duration") {
		cfg.MinClipDurationSecs = sa.minClipDuration
	}
	if flags.Changed("codec") {
		cfg.OutputCodec = sa.codec
	}
	if flags.Changed("ext") {
		cfg.OutputExt = sa.ext
	}

	return nil
}

// parseRegion parses "x1,y1,x2,y2" into a normalized rectangle.
func parseRegion(s string) (roi.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return roi.Rect{}, fmt.Errorf("invalid region %q: expected x1,y1,x2,y2", s)
	}

	coords := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return roi.Rect{}, fmt.Errorf("invalid region %q: %q is not an integer", s, p)
		}
		coords[i] = v
	}

	return roi.New(coords[0], coords[1], coords[2], coords[3]), nil
}
