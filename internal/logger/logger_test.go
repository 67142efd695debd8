package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitWithLevel(t *testing.T) {
	if err := InitWithLevel("debug"); err != nil {
		t.Fatalf("Expected debug level to be accepted, got %v", err)
	}
	if Log == nil {
		t.Fatal("Log should not be nil after init")
	}
	if !Log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Debug level should be enabled")
	}
}

func TestInitWithLevelRejectsUnknown(t *testing.T) {
	if err := InitWithLevel("loud"); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Error("OrNop(nil) should return a usable logger")
	}
	l := Log
	if OrNop(l) != l {
		t.Error("OrNop should return the logger it was given")
	}
}
