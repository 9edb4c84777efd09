package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/net/netutil"

	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	"github.com/nimiq-community/go-nimiq-rpc/libs/service"
	rpchttp "github.com/nimiq-community/go-nimiq-rpc/rpc/client/http"
	"github.com/nimiq-community/go-nimiq-rpc/rpc/client/watch"
	jsonrpcclient "github.com/nimiq-community/go-nimiq-rpc/rpc/jsonrpc/client"
)

// MakeWatchCommand returns the command that prints every new block until
// interrupted.
func MakeWatchCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	var (
		from    uint32
		catchUp uint32
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the head of the chain and print each new block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				clientOpts  []rpchttp.Option
				watcherOpts = []watch.Option{
					watch.WithPollInterval(conf.RPC.PollInterval),
					watch.WithMaxCatchUp(catchUp),
				}
			)
			if cmd.Flags().Changed("from") {
				watcherOpts = append(watcherOpts, watch.WithStartHeight(from))
			}

			if conf.Instrumentation.Prometheus {
				ns := conf.Instrumentation.Namespace
				clientOpts = append(clientOpts, rpchttp.WithMetrics(jsonrpcclient.PrometheusMetrics(ns)))
				watcherOpts = append(watcherOpts, watch.WithMetrics(watch.PrometheusMetrics(ns)))

				srv, err := startPrometheusServer(conf.Instrumentation, logger)
				if err != nil {
					return err
				}
				defer func() {
					sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := srv.Shutdown(sctx); err != nil {
						logger.Error("prometheus server shutdown", "err", err)
					}
				}()
			}

			c, err := newClient(conf, logger, clientOpts...)
			if err != nil {
				return err
			}

			w := watch.NewHeadWatcher(logger.With("module", "watch"), c, watcherOpts...)
			if err := w.Start(ctx); err != nil {
				return err
			}
			defer func() {
				if err := w.Stop(); err != nil && !errors.Is(err, service.ErrAlreadyStopped) {
					logger.Error("stopping head watcher", "err", err)
				}
			}()

			for {
				select {
				case <-ctx.Done():
					return nil
				case block, ok := <-w.Blocks():
					if !ok {
						return nil
					}
					if err := printResult(cmd.OutOrStdout(), conf.Output, block); err != nil {
						return err
					}
				}
			}
		},
	}
	cmd.Flags().Uint32Var(&from, "from", 0, "publish every block after this height instead of starting at the head")
	cmd.Flags().Uint32Var(&catchUp, "max-catch-up", watch.DefaultMaxCatchUp, "maximum number of blocks fetched after a single poll")
	return cmd
}

// startPrometheusServer serves the default Prometheus registry on the
// configured address. The returned server must be shut down by the caller.
func startPrometheusServer(cfg *config.InstrumentationConfig, logger log.Logger) (*http.Server, error) {
	ln, err := net.Listen("tcp", cfg.PrometheusListenAddr)
	if err != nil {
		return nil, fmt.Errorf("prometheus listener: %w", err)
	}
	if cfg.MaxOpenConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxOpenConnections)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.InstrumentMetricHandler(
		prometheus.DefaultRegisterer,
		promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{MaxRequestsInFlight: cfg.MaxOpenConnections}),
	))

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("prometheus HTTP server Serve", "err", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())
	return srv, nil
}
