package reporter

import (
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/mkarlsen/motioncut/internal/util"
)

// TerminalReporter outputs human-friendly text to the terminal.
type TerminalReporter struct {
	mu         sync.Mutex
	progress   *progressbar.ProgressBar
	maxPercent float32
	cyan       *color.Color
	green      *color.Color
	yellow     *color.Color
	red        *color.Color
	magenta    *color.Color
	bold       *color.Color
}

// NewTerminalReporter creates a new terminal reporter.
func NewTerminalReporter() *TerminalReporter {
	return &TerminalReporter{
		cyan:    color.New(color.FgCyan, color.Bold),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		magenta: color.New(color.FgMagenta),
		bold:    color.New(color.Bold),
	}
}

func (r *TerminalReporter) finishProgress() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}
	r.maxPercent = 0
}

// printLabel prints a bold label with fixed width padding followed by a value.
// Width is applied to the plain text before styling to ensure proper alignment.
func (r *TerminalReporter) printLabel(width int, label, value string) {
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	fmt.Printf("  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) ScanStarted(summary ScanSummary) {
	fmt.Println()
	_, _ = r.cyan.Println("VIDEO")
	r.printLabel(12, "File:", summary.InputFile)
	r.printLabel(12, "Resolution:", summary.Resolution)
	r.printLabel(12, "Duration:", summary.Duration)
	r.printLabel(12, "Frame rate:", fmt.Sprintf("%.2f fps (%d frames)", summary.FPS, summary.FrameCount))
	r.printLabel(12, "Region:", summary.Region)
}

func (r *TerminalReporter) AnalysisStarted(totalFrames int) {
	r.finishProgress()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.progress = progressbar.NewOptions64(
		100,
		progressbar.OptionSetDescription(""),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "Analyzing [",
			BarEnd:        "]",
		}),
	)
}

func (r *TerminalReporter) AnalysisProgress(progress AnalysisSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.progress == nil {
		return
	}

	clamped := progress.Percent
	if clamped > 100 {
		clamped = 100
	}
	if clamped < 0 {
		clamped = 0
	}

	if clamped >= r.maxPercent {
		r.maxPercent = clamped
		_ = r.progress.Set64(int64(clamped))
	}

	r.progress.Describe(fmt.Sprintf("frame %d/%d", progress.CurrentFrame, progress.TotalFrames))
}

func (r *TerminalReporter) AnalysisComplete(outcome AnalysisOutcome) {
	r.finishProgress()

	fmt.Println()
	_, _ = r.cyan.Println("ANALYSIS")
	if outcome.MergedSegments == 0 {
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint("no motion detected"))
		return
	}
	r.printLabel(12, "Segments:", fmt.Sprintf("%d raw, %d after merging", outcome.RawSegments, outcome.MergedSegments))
}

func (r *TerminalReporter) ClipExported(summary ClipSummary) {
	fmt.Printf("  %s clip %d/%d: %s (%s-%s, %d frames)\n",
		r.magenta.Sprint("›"),
		summary.ClipIndex, summary.ClipCount,
		r.bold.Sprint(summary.OutputFile),
		util.FormatSeconds(summary.StartSecs),
		util.FormatSeconds(summary.EndSecs),
		summary.FramesWritten)
}

func (r *TerminalReporter) VideoComplete(outcome VideoOutcome) {
	fmt.Println()
	_, _ = r.cyan.Println("RESULTS")
	r.printLabel(8, "File:", outcome.InputFile)
	r.printLabel(8, "Clips:", fmt.Sprintf("%d", outcome.ClipsExported))
	r.printLabel(8, "Time:", util.FormatDuration(outcome.TotalTime.Seconds()))
}

func (r *TerminalReporter) Warning(message string) {
	r.finishProgress()
	fmt.Println()
	_, _ = r.yellow.Printf("WARN: %s\n", message)
}

func (r *TerminalReporter) Error(err ReporterError) {
	r.finishProgress()
	_, _ = fmt.Fprintln(os.Stderr)
	_, _ = r.red.Fprintf(os.Stderr, "ERROR %s\n", err.Title)
	_, _ = fmt.Fprintf(os.Stderr, "  %s\n", err.Message)
	if err.Context != "" {
		_, _ = fmt.Fprintf(os.Stderr, "  Context: %s\n", err.Context)
	}
	if err.Suggestion != "" {
		_, _ = fmt.Fprintf(os.Stderr, "  Suggestion: %s\n", err.Suggestion)
	}
}

func (r *TerminalReporter) OperationComplete(message string) {
	fmt.Println()
	fmt.Printf("%s %s\n", r.green.Add(color.Bold).Sprint("✓"), r.bold.Sprint(message))
}

func (r *TerminalReporter) BatchStarted(info BatchStartInfo) {
	fmt.Println()
	_, _ = r.cyan.Println("BATCH")
	fmt.Printf("  Scanning %d files -> %s\n", info.TotalFiles, r.bold.Sprint(info.OutputDir))
	for i, name := range info.FileList {
		fmt.Printf("  %d. %s\n", i+1, name)
	}
}

func (r *TerminalReporter) FileProgress(context FileProgressContext) {
	fmt.Printf("\nFile %s of %d\n",
		r.bold.Sprint(context.CurrentFile),
		context.TotalFiles)
}

func (r *TerminalReporter) BatchComplete(summary BatchSummary) {
	fmt.Println()
	_, _ = r.cyan.Println("BATCH SUMMARY")
	fmt.Printf("  %s\n", r.bold.Sprintf("%d of %d videos processed", summary.ProcessedCount, summary.TotalFiles))
	fmt.Printf("  Clips exported: %s\n", r.green.Sprintf("%d", summary.TotalClips))
	fmt.Printf("  Time: %s\n", util.FormatDuration(summary.TotalDuration.Seconds()))

	for _, result := range summary.FileResults {
		fmt.Printf("  - %s (%d clips)\n", result.Filename, result.Clips)
	}
}
