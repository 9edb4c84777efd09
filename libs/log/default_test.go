package log_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
)

func TestNewDefaultLogger(t *testing.T) {
	testCases := map[string]struct {
		format    string
		level     string
		expectErr bool
	}{
		"invalid format": {
			format:    "foo",
			level:     log.LogLevelInfo,
			expectErr: true,
		},
		"invalid level": {
			format:    log.LogFormatJSON,
			level:     "foo",
			expectErr: true,
		},
		"valid format and level": {
			format:    log.LogFormatJSON,
			level:     log.LogLevelInfo,
			expectErr: false,
		},
		"plain format": {
			format:    log.LogFormatPlain,
			level:     log.LogLevelDebug,
			expectErr: false,
		},
	}

	for name, tc := range testCases {
		tc := tc

		t.Run(name, func(t *testing.T) {
			_, err := log.NewDefaultLogger(tc.format, tc.level)
			if tc.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDefaultLoggerLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer

	logger, err := log.NewDefaultLoggerWithWriter(&buf, log.LogFormatJSON, log.LogLevelInfo)
	require.NoError(t, err)

	logger.Debug("hidden", "k", "v")
	require.Zero(t, buf.Len())

	logger.With("module", "rpc").Info("call", "method", "blockNumber")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "call", entry["message"])
	require.Equal(t, "rpc", entry["module"])
	require.Equal(t, "blockNumber", entry["method"])
}

func TestOverrideWithNewLogger(t *testing.T) {
	logger := log.MustNewDefaultLogger(log.LogFormatJSON, log.LogLevelInfo)
	require.NoError(t, log.OverrideWithNewLogger(logger, log.LogFormatPlain, log.LogLevelDebug))

	require.Error(t, log.OverrideWithNewLogger(log.NewNopLogger(), log.LogFormatJSON, "bogus"))
}
