package main

import (
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-service/internal/platform/health"
)

const doctorTimeout = 3 * time.Second

func newDoctorCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the todo API and the query cache answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrinter(cmd.OutOrStdout())

			registry := health.New(health.WithCheckTimeout(doctorTimeout))
			for _, c := range e.checks {
				registry.Register(c)
			}
			results := registry.CheckAll(cmd.Context())

			names := make([]string, 0, len(results))
			for name := range results {
				names = append(names, name)
			}
			slices.Sort(names)

			for _, name := range names {
				if err := results[name]; err != nil {
					p.failFor(name, err)
					continue
				}
				p.ok(name + " ok")
			}

			if !health.Healthy(results) {
				return errReported
			}
			return nil
		},
	}
}
