package main

import (
	"bytes"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerFormat(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(NewHandler(&out, nil))

	log.Info("Number of events: 12", "module", "main")

	pattern := regexp.MustCompile(`^\[\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\] \[main\] Number of events: 12\n$`)
	assert.Regexp(t, pattern, out.String())
}

func TestHandlerLevel(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(NewHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn}))

	log.Info("hidden")
	assert.Empty(t, out.String())
	log.Warn("shown")
	assert.Contains(t, out.String(), "shown")
}

func TestLoggerAdapter(t *testing.T) {
	var info, errs bytes.Buffer
	l := Logger{
		InfoLog:  slog.New(NewHandler(&info, nil)),
		ErrorLog: slog.New(slog.NewJSONHandler(&errs, nil)),
	}

	l.Info("table built", "distances")
	l.Error("mapping failed")

	assert.Contains(t, info.String(), "[distances] table built")
	assert.Contains(t, errs.String(), `"msg":"mapping failed"`)
}
