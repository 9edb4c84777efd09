package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nimiq-community/go-nimiq-rpc/cmd/nimiq-rpc/commands"
	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/cli"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conf := config.DefaultConfig()

	logger, err := log.NewDefaultLogger(conf.LogFormat, conf.LogLevel)
	if err != nil {
		panic(err)
	}

	rcmd := commands.RootCommand(conf, logger)
	rcmd.AddCommand(
		commands.MakeInitCommand(conf, logger),
		commands.VersionCmd,
		commands.MakeStatusCommand(conf, logger),
		commands.MakeAccountsCommand(conf, logger),
		commands.MakeAccountCommand(conf, logger),
		commands.MakeBalanceCommand(conf, logger),
		commands.MakeBlockCommand(conf, logger),
		commands.MakeBlockNumberCommand(conf, logger),
		commands.MakeTxCommand(conf, logger),
		commands.MakeReceiptCommand(conf, logger),
		commands.MakeTxsCommand(conf, logger),
		commands.MakeSendCommand(conf, logger),
		commands.MakeSendRawCommand(conf, logger),
		commands.MakePeersCommand(conf, logger),
		commands.MakePeerCommand(conf, logger),
		commands.MakeMiningCommand(conf, logger),
		commands.MakeLogCommand(conf, logger),
		commands.MakeMempoolCommand(conf, logger),
		commands.MakeWatchCommand(conf, logger),
		commands.MakeCallCommand(conf, logger),
	)

	if err := cli.RunWithTrace(ctx, rcmd); err != nil {
		os.Exit(1)
	}
}
