package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"Warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
	}

	for _, tc := range cases {
		got, err := parseLevel(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestFromContextRoundTrip(t *testing.T) {
	base := slog.Default().With(slog.String("component", "test"))
	ctx := WithLogger(context.Background(), base)

	if got := FromContext(ctx); got != base {
		t.Error("FromContext did not return the attached logger")
	}

	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext without attachment should fall back to default")
	}

	fallback := slog.Default().With(slog.String("component", "fallback"))
	if got := FromContextOrDefault(context.Background(), fallback); got != fallback {
		t.Error("FromContextOrDefault should return the provided fallback")
	}
}
