package log

import (
	"github.com/rs/zerolog"
)

// NewNopLogger returns a Logger that discards everything. It is the default
// logger of the RPC client.
func NewNopLogger() Logger {
	return &defaultLogger{Logger: zerolog.Nop()}
}
