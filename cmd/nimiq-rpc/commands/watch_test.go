package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimiq-community/go-nimiq-rpc/libs/cli"
)

// syncBuffer is written by the command while the test reads it.
type syncBuffer struct {
	mtx sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.buf.Write(p)
}

// heights decodes the complete blocks printed so far.
func (b *syncBuffer) heights() []uint32 {
	b.mtx.Lock()
	data := append([]byte(nil), b.buf.Bytes()...)
	b.mtx.Unlock()

	var heights []uint32
	dec := json.NewDecoder(bytes.NewReader(data))
	for {
		var block struct {
			Number uint32 `json:"number"`
		}
		if err := dec.Decode(&block); err != nil {
			return heights
		}
		heights = append(heights, block.Number)
	}
}

// chainNode serves a chain whose head can be moved by the test.
func chainNode(t *testing.T, head *uint32) string {
	t.Helper()

	srv, _ := fakeNode(t, map[string]interface{}{
		"blockNumber": resultFunc(func(*http.Request, []json.RawMessage) interface{} {
			return atomic.LoadUint32(head)
		}),
		"getBlockByNumber": resultFunc(func(_ *http.Request, params []json.RawMessage) interface{} {
			var height uint32
			require.NoError(t, json.Unmarshal(params[0], &height))
			return map[string]interface{}{
				"number":       height,
				"hash":         fmt.Sprintf("%064x", height),
				"transactions": []string{},
			}
		}),
	})
	return srv.URL
}

type watchRun struct {
	out    *syncBuffer
	cancel context.CancelFunc
	done   chan error
}

func startWatch(t *testing.T, remote, configTOML string, args ...string) *watchRun {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	run := &watchRun{out: &syncBuffer{}, cancel: cancel, done: make(chan error, 1)}
	cmd, args := prepareCommand(t, t.TempDir(), configTOML, run.out, remote, append([]string{"watch"}, args...)...)
	go func() {
		run.done <- cli.RunWithArgs(ctx, cmd, args, nil)
	}()
	t.Cleanup(cancel)
	return run
}

func (r *watchRun) stop(t *testing.T) {
	t.Helper()
	r.cancel()
	select {
	case err := <-r.done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}

const fastPollConfig = `
[rpc]
poll-interval = "10ms"
`

func TestWatchCommand(t *testing.T) {
	cases := []struct {
		name  string
		head  uint32
		args  []string
		first []uint32
	}{
		{"from head", 4, nil, []uint32{4}},
		{"from height", 4, []string{"--from", "2"}, []uint32{3, 4}},
		{"catch up limit", 50, []string{"--from", "10", "--max-catch-up", "2"}, []uint32{49, 50}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			head := tc.head
			run := startWatch(t, chainNode(t, &head), fastPollConfig, tc.args...)

			require.Eventually(t, func() bool {
				return len(run.out.heights()) >= len(tc.first)
			}, 5*time.Second, 10*time.Millisecond)
			assert.Equal(t, tc.first, run.out.heights())

			atomic.StoreUint32(&head, tc.head+2)
			want := append(append([]uint32(nil), tc.first...), tc.head+1, tc.head+2)
			require.Eventually(t, func() bool {
				return len(run.out.heights()) >= len(want)
			}, 5*time.Second, 10*time.Millisecond)
			assert.Equal(t, want, run.out.heights())

			run.stop(t)
		})
	}
}

// Only one test may enable Prometheus: the metrics live in the default
// registry for the lifetime of the process.
func TestWatchCommandServesMetrics(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	head := uint32(7)
	run := startWatch(t, chainNode(t, &head), fmt.Sprintf(`
[rpc]
poll-interval = "10ms"

[instrumentation]
prometheus = true
prometheus-listen-addr = %q
max-open-connections = 2
`, addr))

	require.Eventually(t, func() bool {
		return len(run.out.heights()) > 0
	}, 5*time.Second, 10*time.Millisecond)

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		bz, err := io.ReadAll(resp.Body)
		if err != nil || resp.StatusCode != http.StatusOK {
			return false
		}
		body = string(bz)
		return true
	}, 5*time.Second, 10*time.Millisecond)

	assert.Contains(t, body, "nimiq_rpc_head_watcher_height 7")
	assert.Contains(t, body, "nimiq_rpc_rpc_client_requests_total")

	run.stop(t)

	_, err = http.Get("http://" + addr + "/metrics")
	assert.Error(t, err, "metrics server should be shut down with the command")
}
