package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rpcwire/rpcwire/internal/cli/output"
	"github.com/rpcwire/rpcwire/internal/logger"
	"github.com/rpcwire/rpcwire/jsonrpc"
)

var (
	inspectKind    string
	inspectLenient bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Decode a JSON-RPC document and describe its envelopes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}

		kind := inspectKind
		if kind == "" {
			kind = settings.Kind
		}

		f := newFormatter(cmd.OutOrStdout())
		switch kind {
		case "request":
			return inspectRequest(f, data)
		case "response":
			return inspectResponse(f, data)
		default:
			return fmt.Errorf("invalid kind %q, want request or response", kind)
		}
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectKind, "kind", "", "document kind: request or response")
	inspectCmd.Flags().BoolVar(&inspectLenient, "lenient", false, "keep invalid request envelopes, salvaging their ids")
	rootCmd.AddCommand(inspectCmd)
}

type callSummary struct {
	Dialect string `json:"dialect,omitempty"`
	Type    string `json:"type"`
	Method  string `json:"method,omitempty"`
	ID      string `json:"id,omitempty"`
	Params  string `json:"params"`
}

type outputSummary struct {
	Dialect string `json:"dialect"`
	Type    string `json:"type"`
	ID      string `json:"id"`
	Outcome string `json:"outcome"`
}

func inspectRequest(f *output.Formatter, data []byte) error {
	decode := jsonrpc.DecodeRequest
	if inspectLenient {
		decode = jsonrpc.DecodeRequestLenient
	}
	req, err := decode(data)
	if err != nil {
		f.Errorf("request does not decode: %v", err)
		return err
	}
	logger.Debugf("decoded %d request envelope(s), batch=%v", len(req.Calls), req.Batch)

	summaries := make([]callSummary, 0, len(req.Calls))
	for _, call := range req.Calls {
		summaries = append(summaries, describeCall(call))
	}
	if f.JSONMode() {
		return f.JSON(summaries)
	}

	rows := make([][]string, 0, len(summaries))
	for i, s := range summaries {
		rows = append(rows, []string{strconv.Itoa(i), s.Dialect, s.Type, s.Method, s.ID, s.Params})
	}
	f.Table([]string{"#", "Dialect", "Type", "Method", "ID", "Params"}, rows)
	return nil
}

func inspectResponse(f *output.Formatter, data []byte) error {
	resp, err := jsonrpc.DecodeResponse(data)
	if err != nil {
		f.Errorf("response does not decode: %v", err)
		return err
	}
	logger.Debugf("decoded %d response envelope(s), batch=%v", len(resp.Outputs), resp.Batch)

	summaries := make([]outputSummary, 0, len(resp.Outputs))
	for _, out := range resp.Outputs {
		summaries = append(summaries, describeOutput(out))
	}
	if f.JSONMode() {
		return f.JSON(summaries)
	}

	rows := make([][]string, 0, len(summaries))
	for i, s := range summaries {
		rows = append(rows, []string{strconv.Itoa(i), s.Dialect, s.Type, s.ID, s.Outcome})
	}
	f.Table([]string{"#", "Dialect", "Type", "ID", "Outcome"}, rows)
	return nil
}

func describeCall(c jsonrpc.Call) callSummary {
	s := callSummary{Params: c.CallParams().Shape().String()}
	switch call := c.(type) {
	case *jsonrpc.MethodCall:
		s.Type = "method call"
		s.Dialect = call.Dialect.String()
		s.Method = call.Method
		s.ID = call.ID.String()
	case *jsonrpc.Notification:
		s.Type = "notification"
		s.Dialect = call.Dialect.String()
		s.Method = call.Method
	case *jsonrpc.InvalidCall:
		s.Type = "invalid"
		id, _ := call.CallID()
		s.ID = id.String()
	}
	return s
}

func describeOutput(o jsonrpc.Output) outputSummary {
	s := outputSummary{
		Dialect: o.OutputDialect().String(),
		ID:      o.OutputID().String(),
	}
	result, rpcErr := o.Unpack()
	if rpcErr != nil {
		s.Type = "failure"
		s.Outcome = fmt.Sprintf("%d %s", rpcErr.Code, rpcErr.Message)
		return s
	}
	s.Type = "success"
	s.Outcome = string(result)
	return s
}
