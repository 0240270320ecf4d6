package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hitsdeck/internal/config"
	"hitsdeck/internal/deps"
)

func newDepsCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check required external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load(*configFlag)
			if err != nil {
				// The tool names have usable defaults, so a missing
				// config file should not block the availability check.
				defaults := config.Default()
				cfg = &defaults
			}

			statuses := deps.CheckBinaries(deps.Defaults(cfg))

			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = "missing"
					missing++
				}
				detail := status.Detail
				if detail == "" {
					detail = status.Description
				}
				rows = append(rows, []string{status.Name, status.Command, state, detail})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Tool", "Command", "Status", "Detail"}, rows))

			if missing > 0 {
				return errors.New("one or more required tools are missing")
			}
			return nil
		},
	}
}
