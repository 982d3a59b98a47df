package conformance

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rpcwire/rpcwire/jsonrpc"
)

// Scenario is a set of codec conformance cases loaded from a YAML file.
type Scenario struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is one wire document and the outcome the codec must produce for it.
type Case struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`                // "request" or "response"
	Lenient   bool   `yaml:"lenient,omitempty"`   // requests only
	Input     string `yaml:"input"`
	Want      string `yaml:"want"`                // "ok" or "error"
	WantKind  string `yaml:"want_kind,omitempty"` // expected decode error kind
	Roundtrip bool   `yaml:"roundtrip,omitempty"` // re-encode must match input byte for byte
}

// Result is the outcome of running one case.
type Result struct {
	Scenario string
	Case     string
	Passed   bool
	Detail   string
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &s, nil
}

// Run executes every case of the scenario against the codec, in order.
func Run(s *Scenario) []Result {
	results := make([]Result, 0, len(s.Cases))
	for _, c := range s.Cases {
		results = append(results, runCase(s.Name, c))
	}
	return results
}

// Summary counts passed and failed results.
func Summary(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

func runCase(scenario string, c Case) Result {
	res := Result{Scenario: scenario, Case: c.Name}

	encoded, err := runInput(c)
	switch c.Want {
	case "error":
		if err == nil {
			res.Detail = "expected a decode error, got none"
			return res
		}
		if c.WantKind != "" {
			var de *jsonrpc.DecodeError
			if !errors.As(err, &de) || string(de.Kind) != c.WantKind {
				res.Detail = fmt.Sprintf("expected error kind %q, got: %v", c.WantKind, err)
				return res
			}
		}
	default: // "ok"
		if err != nil {
			res.Detail = fmt.Sprintf("unexpected decode error: %v", err)
			return res
		}
		if c.Roundtrip && string(encoded) != c.Input {
			res.Detail = fmt.Sprintf("round trip mismatch: got %s", encoded)
			return res
		}
	}
	res.Passed = true
	return res
}

// runInput decodes the case input and, for round-trip cases, re-encodes it.
func runInput(c Case) ([]byte, error) {
	input := []byte(c.Input)
	if c.Kind == "response" {
		resp, err := jsonrpc.DecodeResponse(input)
		if err != nil || !c.Roundtrip {
			return nil, err
		}
		return jsonrpc.EncodeResponse(resp)
	}

	var req jsonrpc.Request
	var err error
	if c.Lenient {
		req, err = jsonrpc.DecodeRequestLenient(input)
	} else {
		req, err = jsonrpc.DecodeRequest(input)
	}
	if err != nil || !c.Roundtrip {
		return nil, err
	}
	return jsonrpc.EncodeRequest(req)
}
