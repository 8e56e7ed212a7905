package reporter

// CompositeReporter fans out events to multiple reporters.
type CompositeReporter struct {
	reporters []Reporter
}

// NewCompositeReporter creates a composite reporter.
func NewCompositeReporter(reporters ...Reporter) *CompositeReporter {
	return &CompositeReporter{reporters: reporters}
}

func (c *CompositeReporter) ScanStarted(summary ScanSummary) {
	for _, r := range c.reporters {
		r.ScanStarted(summary)
	}
}

func (c *CompositeReporter) AnalysisStarted(totalFrames int) {
	for _, r := range c.reporters {
		r.AnalysisStarted(totalFrames)
	}
}

func (c *CompositeReporter) AnalysisProgress(progress AnalysisSnapshot) {
	for _, r := range c.reporters {
		r.AnalysisProgress(progress)
	}
}

func (c *CompositeReporter) AnalysisComplete(outcome AnalysisOutcome) {
	for _, r := range c.reporters {
		r.AnalysisComplete(outcome)
	}
}

func (c *CompositeReporter) ClipExported(summary ClipSummary) {
	for _, r := range c.reporters {
		r.ClipExported(summary)
	}
}

func (c *CompositeReporter) VideoComplete(outcome VideoOutcome) {
	for _, r := range c.reporters {
		r.VideoComplete(outcome)
	}
}

func (c *CompositeReporter) Warning(message string) {
	for _, r := range c.reporters {
		r.Warning(message)
	}
}

func (c *CompositeReporter) Error(err ReporterError) {
	for _, r := range c.reporters {
		r.Error(err)
	}
}

func (c *CompositeReporter) OperationComplete(message string) {
	for _, r := range c.reporters {
		r.OperationComplete(message)
	}
}

func (c *CompositeReporter) BatchStarted(info BatchStartInfo) {
	for _, r := range c.reporters {
		r.BatchStarted(info)
	}
}

func (c *CompositeReporter) FileProgress(context FileProgressContext) {
	for _, r := range c.reporters {
		r.FileProgress(context)
	}
}

func (c *CompositeReporter) BatchComplete(summary BatchSummary) {
	for _, r := range c.reporters {
		r.BatchComplete(summary)
	}
}
