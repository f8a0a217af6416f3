package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func restoreDefaults(t *testing.T) {
	t.Cleanup(func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	})
}

func TestSetLevel_FiltersBelowThreshold(t *testing.T) {
	restoreDefaults(t)

	var buf bytes.Buffer
	SetSink(&buf)
	SetLevel(Warning)

	logger := New("logtest")
	logger.Info("below threshold")
	logger.Warning("at threshold")

	if strings.Contains(buf.String(), "below threshold") {
		t.Error("Info message leaked through Warning level")
	}
	if !strings.Contains(buf.String(), "at threshold") {
		t.Error("Warning message was filtered out")
	}
}

func TestSetSink_PreservesLevel(t *testing.T) {
	restoreDefaults(t)

	SetLevel(Debug)

	// Swapping the sink must not reset verbosity
	var buf bytes.Buffer
	SetSink(&buf)

	logger := New("logtest")
	logger.Debug("debug survives sink change")

	if !strings.Contains(buf.String(), "debug survives sink change") {
		t.Error("Debug level was lost when the sink changed")
	}
}
