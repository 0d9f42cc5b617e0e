package solderevent_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solder-di/solder/solderevent"
)

func TestConsoleLogger_Events(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		event solderevent.Event
		want  []string
	}{
		{
			name: "registered",
			event: &solderevent.Registered{
				TypeName:        "main.Clock",
				Lifetime:        "Singleton",
				ConstructorName: "main.NewSystemClock",
			},
			want: []string{"REGISTERED", "main.Clock", "Singleton", "main.NewSystemClock"},
		},
		{
			name:  "supplied",
			event: &solderevent.Supplied{TypeName: "*config.Config"},
			want:  []string{"SUPPLIED", "*config.Config"},
		},
		{
			name:  "resolved",
			event: &solderevent.Resolved{TypeName: "main.Clock"},
			want:  []string{"RESOLVED", "main.Clock"},
		},
		{
			name:  "resolve failed",
			event: &solderevent.Resolved{TypeName: "main.Clock", Err: errors.New("no binding")},
			want:  []string{"RESOLVE FAILED", "main.Clock", "no binding"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := &solderevent.ConsoleLogger{W: &buf}
			logger.LogEvent(tc.event)

			out := buf.String()
			assert.Contains(t, out, "[solder]")
			for _, want := range tc.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestNopLogger_Discards(t *testing.T) {
	t.Parallel()

	// Must not panic, must not write anywhere.
	solderevent.NopLogger.LogEvent(&solderevent.Resolved{TypeName: "x"})
}
