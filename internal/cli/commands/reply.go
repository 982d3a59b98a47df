package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpcwire/rpcwire/internal/logger"
	"github.com/rpcwire/rpcwire/jsonrpc"
)

var (
	replyCode    int64
	replyMessage string
	replyDialect string
)

var replyCmd = &cobra.Command{
	Use:   "reply [file]",
	Short: "Build the error response answering a request document",
	Long: `reply decodes a request leniently and emits a response document that
answers every call with the given error. Notifications are skipped, as no
response may be produced for them. Envelopes that match neither dialect are
answered in the dialect set by --dialect, correlated by whatever id could be
salvaged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}

		fallback := jsonrpc.V2
		switch replyDialect {
		case "2.0":
		case "1.0":
			fallback = jsonrpc.V1
		default:
			return fmt.Errorf("invalid dialect %q, want 1.0 or 2.0", replyDialect)
		}

		f := newFormatter(cmd.OutOrStdout())
		req, err := jsonrpc.DecodeRequestLenient(data)
		if err != nil {
			f.Errorf("request does not decode: %v", err)
			return err
		}

		outputs := make([]jsonrpc.Output, 0, len(req.Calls))
		for _, call := range req.Calls {
			id, ok := call.CallID()
			if !ok {
				continue
			}
			dialect := fallback
			if mc, isCall := call.(*jsonrpc.MethodCall); isCall {
				dialect = mc.Dialect
			}
			rpcErr := jsonrpc.NewError(jsonrpc.ErrorCode(replyCode))
			if replyMessage != "" {
				rpcErr.Message = replyMessage
			}
			outputs = append(outputs, jsonrpc.NewOutput(dialect, id, nil, rpcErr))
		}
		logger.Debugf("answering %d of %d envelope(s)", len(outputs), len(req.Calls))
		if len(outputs) == 0 && !req.Batch {
			// a lone notification gets no reply at all
			return nil
		}

		resp := jsonrpc.Response{Batch: req.Batch, Outputs: outputs}
		enc, err := jsonrpc.EncodeResponse(resp)
		if err != nil {
			f.Errorf("response does not encode: %v", err)
			return err
		}
		f.Raw(enc)
		return nil
	},
}

func init() {
	replyCmd.Flags().Int64Var(&replyCode, "code", int64(jsonrpc.CodeInvalidRequest), "error code to answer with")
	replyCmd.Flags().StringVar(&replyMessage, "message", "", "error message (default is the code's standard message)")
	replyCmd.Flags().StringVar(&replyDialect, "dialect", "2.0", "dialect for answers to invalid envelopes: 1.0 or 2.0")
	rootCmd.AddCommand(replyCmd)
}
