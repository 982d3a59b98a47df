package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpcwire/rpcwire/internal/conformance"
	"github.com/rpcwire/rpcwire/internal/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check <scenario.yaml>...",
	Short: "Run conformance scenarios against the codec",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := newFormatter(cmd.OutOrStdout())

		var results []conformance.Result
		for _, path := range args {
			scenario, err := conformance.LoadScenario(path)
			if err != nil {
				f.Errorf("%v", err)
				return err
			}
			logger.Infof("scenario %s: %d case(s)", scenario.Name, len(scenario.Cases))
			results = append(results, conformance.Run(scenario)...)
		}

		if f.JSONMode() {
			if err := f.JSON(results); err != nil {
				return err
			}
		}

		passed, failed := conformance.Summary(results)
		if failed == 0 {
			if !f.JSONMode() {
				f.Okf("%d cases passed", passed)
			}
			return nil
		}

		if !f.JSONMode() {
			var rows [][]string
			for _, r := range results {
				if r.Passed {
					continue
				}
				rows = append(rows, []string{r.Scenario, r.Case, r.Detail})
			}
			f.Table([]string{"Scenario", "Case", "Detail"}, rows)
			f.Errorf("%d of %d cases failed", failed, passed+failed)
		}
		return fmt.Errorf("%d conformance cases failed", failed)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
