package logger

import (
	"testing"

	"github.com/gookit/slog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" DEBUG ": Debug,
		"warning": Warn,
		"warn":    Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}

func TestWith_MergesFieldsWithoutMutatingParent(t *testing.T) {
	parent := New(Options{Level: Error, App: "rdf"}).(*slogLogger)
	child := parent.With(map[string]any{"client_id": "c-1", " ": "skip"}).(*slogLogger)

	assert.Equal(t, map[string]any{"app": "rdf"}, parent.base)
	assert.Equal(t, map[string]any{"app": "rdf", "client_id": "c-1"}, child.base)

	// sin campos devuelve el mismo logger
	assert.Same(t, parent, parent.With(nil))
}

func TestLevelsUpTo_IncludesMoreSevere(t *testing.T) {
	levels := levelsUpTo(Warn)
	assert.NotEmpty(t, levels)
	assert.Contains(t, levels, slog.ErrorLevel)
	assert.Contains(t, levels, slog.WarnLevel)
	assert.NotContains(t, levels, slog.InfoLevel)
	assert.NotContains(t, levels, slog.DebugLevel)
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.NotPanics(t, func() {
		l.With(map[string]any{"a": 1}).Error("boom", nil)
	})
}
