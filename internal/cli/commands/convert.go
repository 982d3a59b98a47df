package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpcwire/rpcwire/internal/logger"
	"github.com/rpcwire/rpcwire/jsonrpc"
)

var convertTo string

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Re-encode a request document in the other dialect",
	Long: `convert decodes a request and writes it back in the dialect named by
--to. Converting to 1.0 fails when a call carries by-name or absent params,
since 1.0 only knows by-position arrays.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}

		var target jsonrpc.Dialect
		switch convertTo {
		case "1.0":
			target = jsonrpc.V1
		case "2.0":
			target = jsonrpc.V2
		default:
			return fmt.Errorf("invalid target dialect %q, want 1.0 or 2.0", convertTo)
		}

		f := newFormatter(cmd.OutOrStdout())
		req, err := jsonrpc.DecodeRequest(data)
		if err != nil {
			f.Errorf("request does not decode: %v", err)
			return err
		}

		converted := make([]jsonrpc.Call, 0, len(req.Calls))
		for i, call := range req.Calls {
			c, err := convertCall(call, target)
			if err != nil {
				f.Errorf("call %d: %v", i, err)
				return err
			}
			converted = append(converted, c)
		}

		logger.Debugf("converted %d envelope(s) to %s", len(converted), target)

		enc, err := jsonrpc.EncodeRequest(jsonrpc.Request{Batch: req.Batch, Calls: converted})
		if err != nil {
			f.Errorf("request does not encode: %v", err)
			return err
		}
		f.Raw(enc)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target dialect: 1.0 or 2.0")
	convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

func convertCall(c jsonrpc.Call, target jsonrpc.Dialect) (jsonrpc.Call, error) {
	if target == jsonrpc.V1 && !c.CallParams().IsArray() {
		return nil, fmt.Errorf("JSON-RPC 1.0 requires array params, got %s", c.CallParams().Shape())
	}
	switch call := c.(type) {
	case *jsonrpc.MethodCall:
		out := *call
		out.Dialect = target
		return &out, nil
	case *jsonrpc.Notification:
		out := *call
		out.Dialect = target
		return &out, nil
	default:
		return nil, fmt.Errorf("an invalid call cannot be converted")
	}
}
