package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/cli"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	tmos "github.com/nimiq-community/go-nimiq-rpc/libs/os"
)

// clearConfig clears env vars, the given root dir, and resets viper.
func clearConfig(t *testing.T, dir string) *config.Config {
	t.Helper()
	require.NoError(t, os.Unsetenv("NIMIQHOME"))
	require.NoError(t, os.Unsetenv("NIMIQ_HOME"))
	require.NoError(t, os.Unsetenv("NIMIQ_RPC_REMOTE"))
	require.NoError(t, os.RemoveAll(dir))

	viper.Reset()
	conf := config.DefaultConfig()
	conf.SetRoot(dir)

	return conf
}

// prepare new rootCmd with a no-op subcommand so the persistent hooks run
func testRootCmd(conf *config.Config, subs ...*cobra.Command) *cobra.Command {
	logger := log.NewNopLogger()
	cmd := RootCommand(conf, logger)
	var l string
	cmd.PersistentFlags().String("log", l, "Log")
	cmd.AddCommand(&cobra.Command{
		Use:  "noop",
		RunE: func(*cobra.Command, []string) error { return nil },
	})
	cmd.AddCommand(subs...)
	return cmd
}

func testSetup(ctx context.Context, t *testing.T, conf *config.Config, args []string, env map[string]string) error {
	t.Helper()

	cmd := testRootCmd(conf)

	// run with the args and env
	args = append([]string{cmd.Use, "noop"}, args...)
	return cli.RunWithArgs(ctx, cmd, args, env)
}

func TestRootHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	defaultRoot := filepath.Join(home, config.DefaultHomeDir)
	newRoot := filepath.Join(home, "something-else")
	cases := []struct {
		args []string
		env  map[string]string
		root string
	}{
		{nil, nil, defaultRoot},
		{[]string{"--home", newRoot}, nil, newRoot},
		{nil, map[string]string{"NIMIQ_HOME": newRoot}, newRoot},
		{nil, map[string]string{"NIMIQHOME": newRoot}, newRoot},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for i, tc := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			conf := clearConfig(t, tc.root)

			err := testSetup(ctx, t, conf, tc.args, tc.env)
			require.NoError(t, err)

			require.Equal(t, tc.root, conf.RootDir)
		})
	}
}

func TestRootFlagsEnv(t *testing.T) {
	defaults := config.DefaultConfig()
	t.Setenv("HOME", t.TempDir())

	cases := []struct {
		args     []string
		env      map[string]string
		logLevel string
		remote   string
	}{
		{[]string{"--log", "debug"}, nil, defaults.LogLevel, defaults.RPC.Remote}, // wrong flag
		{[]string{"--log-level", "debug"}, nil, "debug", defaults.RPC.Remote},     // right flag
		{nil, map[string]string{"NIMIQ_LOG_LEVEL": "debug"}, "debug", defaults.RPC.Remote},
		{[]string{"--remote", "http://node:8648"}, nil, defaults.LogLevel, "http://node:8648"},
		{nil, map[string]string{"NIMIQ_RPC_REMOTE": "http://env:8648"}, defaults.LogLevel, "http://env:8648"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for i, tc := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			conf := clearConfig(t, t.TempDir())

			err := testSetup(ctx, t, conf, tc.args, tc.env)
			require.NoError(t, err)

			assert.Equal(t, tc.logLevel, conf.LogLevel)
			assert.Equal(t, tc.remote, conf.RPC.Remote)
		})
	}
}

func TestRootConfig(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// write non-default config
	nonDefaultLogLvl := "debug"
	cvals := map[string]string{
		"log-level": nonDefaultLogLvl,
	}

	cases := []struct {
		args   []string
		env    map[string]string
		logLvl string
	}{
		{nil, nil, nonDefaultLogLvl},                // should load config
		{[]string{"--log-level=info"}, nil, "info"}, // flag over rides
	}

	for i, tc := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			defaultRoot := t.TempDir()
			conf := clearConfig(t, defaultRoot)

			configFilePath := filepath.Join(defaultRoot, "config")
			err := tmos.EnsureDir(configFilePath, 0700)
			require.NoError(t, err)

			err = cli.WriteConfigVals(configFilePath, cvals)
			require.NoError(t, err)

			cmd := testRootCmd(conf)

			args := append([]string{cmd.Use, "noop", "--home", defaultRoot}, tc.args...)
			err = cli.RunWithArgs(ctx, cmd, args, tc.env)
			require.NoError(t, err)

			require.Equal(t, tc.logLvl, conf.LogLevel)
		})
	}
}

func TestRootEnvFile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	root := t.TempDir()
	conf := clearConfig(t, root)
	require.NoError(t, tmos.EnsureDir(root, 0700))
	require.NoError(t, os.WriteFile(conf.EnvFile(), []byte("NIMIQ_RPC_REMOTE=http://dotenv:8648\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("NIMIQ_RPC_REMOTE") })

	cmd := testRootCmd(conf)
	err := cli.RunWithArgs(ctx, cmd, []string{cmd.Use, "noop", "--home", root}, nil)
	require.NoError(t, err)

	assert.Equal(t, "http://dotenv:8648", conf.RPC.Remote)
}

// nodeCalls records the methods a fakeNode was asked for.
type nodeCalls struct {
	mtx     sync.Mutex
	methods []string
	auth    []string
}

func (c *nodeCalls) add(method, auth string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.methods = append(c.methods, method)
	c.auth = append(c.auth, auth)
}

func (c *nodeCalls) list() []string {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return append([]string(nil), c.methods...)
}

func (c *nodeCalls) credentials() []string {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return append([]string(nil), c.auth...)
}

// resultFunc computes a result from the request instead of the fixed table.
type resultFunc func(r *http.Request, params []json.RawMessage) interface{}

// fakeNode answers single JSON-RPC requests from a result table. Methods
// missing from the table fail with "Method not found".
func fakeNode(t *testing.T, results map[string]interface{}) (*httptest.Server, *nodeCalls) {
	t.Helper()

	calls := &nodeCalls{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req struct {
			ID     int               `json:"id"`
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}
		require.NoError(t, json.Unmarshal(body, &req))

		var auth string
		if user, pass, ok := r.BasicAuth(); ok {
			auth = user + ":" + pass
		}
		calls.add(req.Method, auth)

		res := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		if result, ok := results[req.Method]; ok {
			if fn, isFn := result.(resultFunc); isFn {
				result = fn(r, req.Params)
			}
			res["result"] = result
		} else {
			res["error"] = map[string]interface{}{"code": -32601, "message": "Method not found"}
		}
		_ = json.NewEncoder(w).Encode(res)
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func testCommands(conf *config.Config, logger log.Logger) []*cobra.Command {
	return []*cobra.Command{
		MakeBlockNumberCommand(conf, logger),
		MakeBalanceCommand(conf, logger),
		MakeMempoolCommand(conf, logger),
		MakeLogCommand(conf, logger),
		MakeCallCommand(conf, logger),
		MakeStatusCommand(conf, logger),
		MakeWatchCommand(conf, logger),
	}
}

func runCommand(t *testing.T, remote string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd, args := prepareCommand(t, t.TempDir(), "", &out, remote, args...)
	err := cli.RunWithArgs(context.Background(), cmd, args, nil)
	return out.String(), err
}

// prepareCommand builds the root command and arguments for a subcommand run
// with home as the config root. A non empty configTOML is written to the
// config file first.
func prepareCommand(t *testing.T, home, configTOML string, out io.Writer, remote string, args ...string) (*cobra.Command, []string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	conf := clearConfig(t, home)
	if configTOML != "" {
		configDir := filepath.Join(home, "config")
		require.NoError(t, tmos.EnsureDir(configDir, 0700))
		require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(configTOML), 0600))
	}

	cmd := testRootCmd(conf, testCommands(conf, log.NewNopLogger())...)
	cmd.SetOut(out)

	args = append([]string{cmd.Use}, args...)
	return cmd, append(args, "--home", home, "--remote", remote)
}

func TestBlockNumberCommand(t *testing.T) {
	srv, methods := fakeNode(t, map[string]interface{}{"blockNumber": 1234})

	out, err := runCommand(t, srv.URL, "block-number")
	require.NoError(t, err)
	assert.Equal(t, "1234\n", out)
	assert.Equal(t, []string{"blockNumber"}, methods.list())
}

func TestBalanceCommandYAML(t *testing.T) {
	srv, _ := fakeNode(t, map[string]interface{}{"getBalance": 150000})

	out, err := runCommand(t, srv.URL, "balance", "NQ07 0000 0000 0000 0000 0000 0000 0000 0000", "-o", "yaml")
	require.NoError(t, err)

	var bal struct {
		Address string `yaml:"address"`
		Luna    uint64 `yaml:"luna"`
		NIM     string `yaml:"nim"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &bal))
	assert.Equal(t, "NQ07 0000 0000 0000 0000 0000 0000 0000 0000", bal.Address)
	assert.EqualValues(t, 150000, bal.Luna)
	assert.Equal(t, "1.50000", bal.NIM)
}

func TestBalanceCommandBadAddress(t *testing.T) {
	srv, methods := fakeNode(t, nil)

	_, err := runCommand(t, srv.URL, "balance", "NQ00 nope")
	require.Error(t, err)
	assert.Empty(t, methods.list())
}

func TestMempoolCommand(t *testing.T) {
	srv, methods := fakeNode(t, map[string]interface{}{
		"minFeePerByte":  5,
		"mempoolContent": []string{"aa", "bb"},
	})

	out, err := runCommand(t, srv.URL, "mempool", "--min-fee", "5")
	require.NoError(t, err)

	var pool Mempool
	require.NoError(t, json.Unmarshal([]byte(out), &pool))
	assert.Equal(t, Mempool{MinFeePerByte: 5, Transactions: []string{"aa", "bb"}}, pool)
	assert.Equal(t, []string{"minFeePerByte", "mempoolContent"}, methods.list())
}

func TestLogCommandRejectsUnknownLevel(t *testing.T) {
	srv, methods := fakeNode(t, map[string]interface{}{"log": true})

	_, err := runCommand(t, srv.URL, "log", "*", "loud")
	require.Error(t, err)
	assert.Empty(t, methods.list())

	out, err := runCommand(t, srv.URL, "log", "*", "debug")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestCallCommand(t *testing.T) {
	srv, _ := fakeNode(t, map[string]interface{}{
		"peerCount":  3,
		"getAccount": nil,
	})

	out, err := runCommand(t, srv.URL, "call", "peerCount")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = runCommand(t, srv.URL, "call", "getAccount", "NQ07 0000")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)

	_, err = runCommand(t, srv.URL, "call", "nope")
	require.Error(t, err)
}

func TestCallCommandCredentials(t *testing.T) {
	srv, calls := fakeNode(t, map[string]interface{}{"peerCount": 3})
	remote := strings.Replace(srv.URL, "http://", "http://alice:secret@", 1)

	_, err := runCommand(t, remote, "call", "peerCount")
	require.NoError(t, err)

	_, err = runCommand(t, remote, "call", "peerCount", "--username", "bob", "--password", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, []string{"alice:secret", "bob:hunter2"}, calls.credentials())
}

func TestParseParams(t *testing.T) {
	params := parseParams([]string{"1", "false", `{"a":1}`, "NQ07 0000", "abc", `"0123"`}, false)
	bz, err := json.Marshal(params)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,false,{"a":1},"NQ07 0000","abc","0123"]`, string(bz))

	params = parseParams([]string{"0123", "false"}, true)
	bz, err = json.Marshal(params)
	require.NoError(t, err)
	assert.JSONEq(t, `["0123","false"]`, string(bz))
}

func TestParseBlockRef(t *testing.T) {
	hash := "a8eb1e3b5d4fb4b8ac7d8e28b1a9c9b9ee2a58bd1d6b0b7d3f0e63ed6cfc8b19"

	ref, err := parseBlockRef("42")
	require.NoError(t, err)
	assert.Equal(t, blockRef{height: 42}, ref)

	ref, err = parseBlockRef(hash)
	require.NoError(t, err)
	assert.Equal(t, blockRef{hash: hash}, ref)

	for _, bad := range []string{"", "-1", "4294967296", "abcd", "zz" + hash[2:]} {
		_, err := parseBlockRef(bad)
		assert.Error(t, err, bad)
	}
}
