package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternClassifier(t *testing.T) {
	c := NewPatternClassifier()

	tests := []struct {
		name     string
		message  string
		escalate bool
	}{
		{"bad job data", "failed to parse posting body", true},
		{"empty message", "", true},
		{"missing api key", "OpenRouter API key not set", false},
		{"credentials", "invalid credentials for smtp relay", false},
		{"network outage", "dial tcp: connection refused", false},
		{"dns failure", "lookup api.example: no such host", false},
		{"rate limited", "429: rate limit exceeded", false},
		{"config missing", "configuration value jobs.root is empty", false},
		{"case insensitive", "CONNECTION REFUSED by peer", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ShouldEscalate("gen.any", 4, 3, tt.message)
			assert.Equal(t, tt.escalate, got)
		})
	}
}

func TestClassifierFunc(t *testing.T) {
	var gotEvent string
	var gotAttempts int
	f := ClassifierFunc(func(event string, attempts, maxRetries int, message string) bool {
		gotEvent = event
		gotAttempts = attempts
		return attempts > maxRetries
	})

	assert.True(t, f.ShouldEscalate("gen.x", 4, 3, "boom"))
	assert.Equal(t, "gen.x", gotEvent)
	assert.Equal(t, 4, gotAttempts)
}
