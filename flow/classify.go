package flow

import "strings"

// Classifier decides, after retries are exhausted, whether a failure is
// job-specific (escalate to the Errored phase) or systemic (leave the job
// where it is). Systemic failures must not bury an infrastructure outage
// under a pile of Errored jobs.
//
// The classifier is pluggable policy: the executor consumes it, callers
// choose the implementation.
type Classifier interface {
	ShouldEscalate(event string, attempts, maxRetries int, message string) bool
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(event string, attempts, maxRetries int, message string) bool

func (f ClassifierFunc) ShouldEscalate(event string, attempts, maxRetries int, message string) bool {
	return f(event, attempts, maxRetries, message)
}

// systemicPatterns are message fragments that indicate missing
// configuration, credentials, or an unreachable dependency rather than bad
// job data.
var systemicPatterns = []string{
	"api key",
	"credential",
	"unauthorized",
	"forbidden",
	"configuration",
	"config file",
	"connection refused",
	"no such host",
	"service unavailable",
	"rate limit",
	"quota",
}

// PatternClassifier classifies failure messages against a list of systemic
// patterns; anything that matches none of them is treated as job-specific.
type PatternClassifier struct {
	systemic []string
}

// NewPatternClassifier returns the default classifier.
func NewPatternClassifier() *PatternClassifier {
	return &PatternClassifier{systemic: systemicPatterns}
}

func (c *PatternClassifier) ShouldEscalate(event string, attempts, maxRetries int, message string) bool {
	lower := strings.ToLower(message)
	for _, pattern := range c.systemic {
		if strings.Contains(lower, pattern) {
			return false
		}
	}
	return true
}
