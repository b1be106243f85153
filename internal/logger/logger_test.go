package logger

import (
	"bytes"
	"os"
	"testing"
)

func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer resetLogger()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("ingesting %s", "front.jpg")

	if got := buf.String(); got != "[DEBUG] ingesting front.jpg\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("ingesting front.jpg")

	if buf.Len() > 0 {
		t.Error("expected no output when verbose is disabled")
	}
}

func TestSection(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("OCR")

	if got := buf.String(); got != "\n=== OCR ===\n" {
		t.Errorf("unexpected section output: %q", got)
	}
}

func TestInfo(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("added %d components", 3)

	if got := buf.String(); got != "[INFO] added 3 components\n" {
		t.Errorf("unexpected info output: %q", got)
	}
}

func TestWarn_PrintsWithoutVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Warn("inventory file is corrupt, starting empty")

	if got := buf.String(); got != "[WARN] inventory file is corrupt, starting empty\n" {
		t.Errorf("unexpected warn output: %q", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
