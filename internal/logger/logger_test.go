package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	log := New(false)
	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("default level = %v, want info", log.GetLevel())
	}

	log = New(true)
	if log.GetLevel() != zerolog.DebugLevel {
		t.Errorf("debug level = %v, want debug", log.GetLevel())
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("test message")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected output to contain the message, got: %s", buf.String())
	}
}

func TestWithFile(t *testing.T) {
	buf := &bytes.Buffer{}
	log := WithFile(NewWithWriter(buf), "2021 Report.xlsx")

	log.Info().Msg("loaded")

	out := buf.String()
	if !strings.Contains(out, "file") || !strings.Contains(out, "2021 Report.xlsx") {
		t.Errorf("expected file field in output, got: %s", out)
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	log := FromContext(ctx)
	log.Info().Msg("via context")

	if buf.Len() == 0 {
		t.Error("expected output from the logger carried in context")
	}
}

func TestFromContext_Default(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() == zerolog.Disabled {
		t.Error("expected a usable default logger")
	}
}
