// Package logger provides the process-wide application log for huntr.
//
// Every retry, terminal failure, and phase transition in the executor is
// recorded here; the per-job audit trail lives in each job folder's job.log.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
	// Flag to track if JSON output is enabled
	JSONOutput bool
)

func init() {
	// Initialize with a safe no-op logger at package load time
	// This prevents nil pointer panics if logger is used before Initialize() is called
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger based on the JSON output preference
func Initialize(jsonOutput bool) error {
	JSONOutput = jsonOutput

	var zapLogger *zap.Logger
	var err error

	if jsonOutput {
		// JSON structured output for machine consumption
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zapLogger, err = config.Build()
	} else {
		// Human-readable console output
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encoderCfg),
				zapcore.AddSync(os.Stdout),
				zap.InfoLevel,
			),
		)
	}

	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Named returns a named child of the global logger.
func Named(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		Logger.Sync()
	}
}
