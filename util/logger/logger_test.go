package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandleWritesFile(t *testing.T) {
	var buf bytes.Buffer
	debug := false
	h := NewHandler(&buf, nil, &debug)
	log := slog.New(h)

	log.Info("swap device attached", "path", "/dev/swap0")

	out := buf.String()
	if !strings.Contains(out, "swap device attached") {
		t.Errorf("log output missing message: %q", out)
	}
	if !strings.Contains(out, "/dev/swap0") {
		t.Errorf("log output missing attr: %q", out)
	}
}

func TestNewHandlerStoresDebugFlag(t *testing.T) {
	var buf bytes.Buffer
	debug := true
	h := NewHandler(&buf, nil, &debug)
	if !h.debug {
		t.Errorf("expected debug flag to be set")
	}
}

func TestSetDebug(t *testing.T) {
	var buf bytes.Buffer
	debug := false
	h := NewHandler(&buf, nil, &debug)
	on := true
	h.SetDebug(&on)
	if !h.debug {
		t.Errorf("SetDebug did not update handler")
	}
}
