package log

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestingLogger returns a Logger which writes to the test's log output if
// testing being run with the verbose (-v) flag, NopLogger otherwise.
//
// Note that the call to TestingLogger() must be made
// inside a test (not in the init func) because
// verbose flag only set at the time of testing.
func TestingLogger(t testing.TB) Logger {
	t.Helper()

	if !testing.Verbose() {
		return NewNopLogger()
	}

	return &defaultLogger{
		Logger: zerolog.New(NewSyncWriter(testingWriter{t})).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger(),
	}
}

type testingWriter struct {
	t testing.TB
}

func (tw testingWriter) Write(in []byte) (int, error) {
	tw.t.Log(string(in))
	return len(in), nil
}
