package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/logger"
	"nextdraw/internal/config"
	"nextdraw/internal/services"
)

func TestMain(m *testing.M) {
	logger.Init("nextdraw-test", false, false, io.Discard)
	os.Exit(m.Run())
}

func newTestService(t *testing.T) *services.LotteryService {
	t.Helper()
	service, err := services.NewLotteryService(config.Config{InputTimezone: "UTC"})
	if err != nil {
		t.Fatalf("NewLotteryService: %v", err)
	}
	return service
}

func TestRunQueries_ContinuesAfterFailure(t *testing.T) {
	service := newTestService(t)
	var out bytes.Buffer

	failed := runQueries(&out, service, []query{
		{from: "2020-10-19 21:50:00", zone: "America/V"},
		{from: "not a date", zone: "GMT"},
		{from: "2020-10-19 21:50:00", zone: "America/Toronto"},
	})

	if failed != 2 {
		t.Errorf("Expected 2 failed queries, but got %d", failed)
	}
	want := "The next draw date: 2020-10-20 21:30:00-America/Toronto\n"
	if out.String() != want {
		t.Errorf("Expected output %q, but got %q", want, out.String())
	}
}

func TestRunQueries_AllSucceed(t *testing.T) {
	service := newTestService(t)
	var out bytes.Buffer

	failed := runQueries(&out, service, []query{
		{from: "2018-01-02 09:30:00", zone: "Europe/Budapest"},
		{from: "2018-01-02 14:31:00", zone: "GMT"},
	})

	if failed != 0 {
		t.Fatalf("Expected no failed queries, but got %d", failed)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, but got %q", out.String())
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "The next draw date: ") {
			t.Errorf("Unexpected line %q", line)
		}
	}
}

func TestLogTargets(t *testing.T) {
	tests := []struct {
		name        string
		serve       bool
		verbose     bool
		wantVerbose bool
	}{
		{"cli quiet", false, false, false},
		{"cli verbose keeps stdout clean", false, true, false},
		{"server quiet", true, false, false},
		{"server verbose", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbose, file := logTargets(tt.serve, tt.verbose)
			if verbose != tt.wantVerbose {
				t.Errorf("Expected verbose %v, but got %v", tt.wantVerbose, verbose)
			}
			// google/logger already writes errors to stderr; a second stderr
			// writer would print every error twice.
			if file == io.Writer(os.Stderr) || file == io.Writer(os.Stdout) {
				t.Errorf("Log file must not be a console stream, got %v", file)
			}
		})
	}
}
