package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		name     string
		expected Level
		ok       bool
	}{
		{name: "debug", expected: DebugLevel, ok: true},
		{name: "info", expected: InfoLevel, ok: true},
		{name: "warn", expected: WarnLevel, ok: true},
		{name: "warning", expected: WarnLevel, ok: true},
		{name: "error", expected: ErrorLevel, ok: true},
		{name: "fatal", expected: FatalLevel, ok: true},
		{name: "verbose", expected: InfoLevel, ok: false},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.name)
		level, ok := ParseLevel(test.name)
		require.Equal(test.ok, ok)
		require.Equal(test.expected, level)
	}
}

func TestSlogLogger_JSON(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	l := NewSlog(Options{Output: &buf, Level: InfoLevel})
	require.Equal(InfoLevel, l.Level())

	l.Debug("hidden")
	require.Zero(buf.Len())

	l.With("job_id", "abc").Info("label rendered", "elements", 2)

	var record map[string]any
	require.NoError(json.Unmarshal(buf.Bytes(), &record))
	require.Equal("INFO", record["level"])
	require.Equal("label rendered", record["msg"])
	require.Equal("abc", record["job_id"])
	require.EqualValues(2, record["elements"])
	require.Contains(record, "ts")
	require.NotContains(record, "time")
}

func TestSlogLogger_SetLevel(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	l := NewSlog(Options{Output: &buf, Level: ErrorLevel})
	child := l.With("path", "job.yaml")

	child.Warn("dropped")
	require.Zero(buf.Len())

	// children share the parent's level
	l.SetLevel(DebugLevel)
	require.Equal(DebugLevel, child.Level())
	child.Debug("kept")
	require.Contains(buf.String(), `"msg":"kept"`)

	l.SetLevel(WarnLevel)
	require.Equal(WarnLevel, l.Level())
}

func TestSlogLogger_Console(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	l := NewSlog(Options{Output: &buf, Level: DebugLevel, Console: true})
	l.Error("label rejected", "path", "job.toml")

	out := buf.String()
	require.Contains(out, "label rejected")
	require.Contains(out, "job.toml")
	require.False(strings.HasPrefix(out, "{"))
}

func TestDefaultLogger(t *testing.T) {
	require := require.New(t)

	prev := GetLogger()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(NewSlog(Options{Output: &buf, Level: WarnLevel}))
	SetDefault(nil)

	Info("hidden")
	Warn("shown", "key", "value")
	require.NotContains(buf.String(), "hidden")
	require.Contains(buf.String(), `"key":"value"`)

	SetLevel(DebugLevel)
	With("component", "test").Debug("child")
	require.Contains(buf.String(), `"component":"test"`)
}
