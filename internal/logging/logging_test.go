package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		verbose   bool
		wantDebug bool
	}{
		{false, false},
		{true, true},
	}

	for _, tt := range tests {
		logger := NewLogger(tt.verbose)
		if logger == nil || logger.SugaredLogger == nil {
			t.Fatalf("NewLogger(%v) returned nil logger", tt.verbose)
		}

		core := logger.Desugar().Core()
		if got := core.Enabled(zapcore.DebugLevel); got != tt.wantDebug {
			t.Errorf("NewLogger(%v): debug enabled = %v, want %v", tt.verbose, got, tt.wantDebug)
		}
		if !core.Enabled(zapcore.InfoLevel) {
			t.Errorf("NewLogger(%v): expected info level enabled", tt.verbose)
		}
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	if logger.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected nop logger to discard all levels")
	}
	logger.Infow("discarded", "key", "value")
}
