package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
)

// MakeCallCommand returns the command that invokes an arbitrary node method.
func MakeCallCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	var strs bool

	cmd := &cobra.Command{
		Use:   "call <method> [params...]",
		Short: "Call a node method with positional parameters",
		Long: `Call a node method with positional parameters.

Each parameter that is valid JSON is sent as is, anything else is sent as a
string. A hash or address made only of digits is valid JSON, so quote it as
a JSON string or pass --strings to send every parameter as a string.
For example:

  nimiq-rpc call getBlockByNumber 1 false
  nimiq-rpc call getBalance "NQ07 0000 0000 0000 0000 0000 0000 0000 0000"
  nimiq-rpc call getTransactionByHash '"0123456789..."'
  nimiq-rpc call --strings getTransactionByHash 0123456789...`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCaller(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			var result json.RawMessage
			if _, err := c.Call(ctx, args[0], parseParams(args[1:], strs), &result); err != nil {
				return err
			}
			if len(result) == 0 {
				result = json.RawMessage("null")
			}
			return printResult(cmd.OutOrStdout(), conf.Output, result)
		},
	}
	cmd.Flags().BoolVar(&strs, "strings", false, "send every parameter as a string")
	return cmd
}

func parseParams(args []string, strs bool) []interface{} {
	params := make([]interface{}, 0, len(args))
	for _, arg := range args {
		if !strs && json.Valid([]byte(arg)) {
			params = append(params, json.RawMessage(arg))
		} else {
			params = append(params, arg)
		}
	}
	return params
}
