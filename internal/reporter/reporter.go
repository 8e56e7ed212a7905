package reporter

// Reporter defines the interface for progress reporting.
type Reporter interface {
	ScanStarted(summary ScanSummary)
	AnalysisStarted(totalFrames int)
	AnalysisProgress(progress AnalysisSnapshot)
	AnalysisComplete(outcome AnalysisOutcome)
	ClipExported(summary ClipSummary)
	VideoComplete(outcome VideoOutcome)
	Warning(message string)
	Error(err ReporterError)
	OperationComplete(message string)
	BatchStarted(info BatchStartInfo)
	FileProgress(context FileProgressContext)
	BatchComplete(summary BatchSummary)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) ScanStarted(ScanSummary)          {}
func (NullReporter) AnalysisStarted(int)              {}
func (NullReporter) AnalysisProgress(AnalysisSnapshot) {}
func (NullReporter) AnalysisComplete(AnalysisOutcome) {}
func (NullReporter) ClipExported(ClipSummary)         {}
func (NullReporter) VideoComplete(VideoOutcome)       {}
func (NullReporter) Warning(string)                   {}
func (NullReporter) Error(ReporterError)              {}
func (NullReporter) OperationComplete(string)         {}
func (NullReporter) BatchStarted(BatchStartInfo)      {}
func (NullReporter) FileProgress(FileProgressContext) {}
func (NullReporter) BatchComplete(BatchSummary)       {}
