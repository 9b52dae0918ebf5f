package sysutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetLogLevel(t *testing.T) {
	orig := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(orig) })

	for name, want := range map[string]zerolog.Level{
		"trace":     zerolog.TraceLevel,
		" Debug ":   zerolog.DebugLevel,
		"INFO":      zerolog.InfoLevel,
		"warning":   zerolog.WarnLevel,
		"warn":      zerolog.WarnLevel,
		"error":     zerolog.ErrorLevel,
		"panic":     zerolog.PanicLevel,
		"":          zerolog.InfoLevel,
		"chatty":    zerolog.InfoLevel,
		"\tfatal\n": zerolog.FatalLevel,
	} {
		if got := SetLogLevel(name); got != want || zerolog.GlobalLevel() != want {
			t.Fatalf("SetLogLevel(%q) = %v (global %v); want %v", name, got, zerolog.GlobalLevel(), want)
		}
	}
}

func TestConfigureLogger_JSONAndPretty(t *testing.T) {
	origLevel := zerolog.GlobalLevel()
	origLogger := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(origLevel)
		log.Logger = origLogger
	})

	var buf bytes.Buffer
	ConfigureLogger(&buf, "warn", false)
	log.Info().Msg("dropped")
	log.Warn().Str("topic", "cats").Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"message":"kept"`) || !strings.Contains(out, `"topic":"cats"`) {
		t.Fatalf("expected JSON warn line, got %s", out)
	}

	buf.Reset()
	ConfigureLogger(&buf, "debug", true)
	log.Debug().Msg("pretty")
	if out := buf.String(); !strings.Contains(out, "pretty") || strings.Contains(out, `"message"`) {
		t.Fatalf("expected console output, got %s", out)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"", " \t"}, ""},
		{[]string{"", "v1.4.0", "dev"}, "v1.4.0"},
		{[]string{"  ", " padded ", "dev"}, " padded "},
	}
	for _, tc := range cases {
		if got := FirstNonEmpty(tc.in...); got != tc.want {
			t.Fatalf("FirstNonEmpty(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
