package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-service/internal/app/fanout"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

func newListCmd(e *env) *cobra.Command {
	flags := &listFlags{}
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List one page of todos",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrinter(cmd.OutOrStdout())
			state := flags.state()

			res, err := e.cache.List(cmd.Context(), state.Key())
			if err != nil {
				p.fail(err)
				return errReported
			}
			p.page(state, res)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newGetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Show todos by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, ids []string) error {
			p := newPrinter(cmd.OutOrStdout())

			results := fanout.Run(cmd.Context(), maxParallel, ids, e.api.GetTodo)
			for _, r := range results {
				if r.Err != nil {
					p.failFor(r.Item, r.Err)
					continue
				}
				p.todo(r.Value)
			}
			return reportJoined(fanout.Join(results))
		},
	}
}

func newAddCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Create a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return save(cmd, e, ports.SaveTodoInput{Title: strings.Join(args, " ")}, "created")
		},
	}
}

func newEditCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Change the title of a todo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return save(cmd, e, ports.SaveTodoInput{ID: args[0], Title: strings.Join(args[1:], " ")}, "updated")
		},
	}
}

func save(cmd *cobra.Command, e *env, in ports.SaveTodoInput, verb string) error {
	p := newPrinter(cmd.OutOrStdout())
	if _, err := e.api.SaveTodo(cmd.Context(), in); err != nil {
		p.fail(err)
		return errReported
	}
	p.ok(fmt.Sprintf("Todo %s: %s", verb, todo.NormalizeTitle(in.Title)))
	return nil
}

func newStatusCmd(e *env, name string, completed bool) *cobra.Command {
	short := "Mark todos as completed"
	if !completed {
		short = "Mark todos as active"
	}
	return &cobra.Command{
		Use:   name + " <id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, ids []string) error {
			p := newPrinter(cmd.OutOrStdout())

			results := fanout.Run(cmd.Context(), maxParallel, ids,
				func(ctx context.Context, id string) (*todo.Todo, error) {
					return e.api.UpdateTodoStatus(ctx, id, completed)
				})
			for _, r := range results {
				if r.Err != nil {
					p.failFor(r.Item, r.Err)
					continue
				}
				p.ok(fmt.Sprintf("%s %s", checkbox(r.Value.Completed), r.Value.Title))
			}
			return reportJoined(fanout.Join(results))
		},
	}
}

func newRmCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Short:   "Delete todos",
		Aliases: []string{"delete"},
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, ids []string) error {
			p := newPrinter(cmd.OutOrStdout())

			results := fanout.Run(cmd.Context(), maxParallel, ids,
				func(ctx context.Context, id string) (struct{}, error) {
					return struct{}{}, e.api.DeleteTodo(ctx, id)
				})
			for _, r := range results {
				if r.Err != nil {
					p.failFor(r.Item, r.Err)
					continue
				}
				p.ok("Deleted " + r.Item)
			}
			return reportJoined(fanout.Join(results))
		},
	}
}

// reportJoined turns per-item failures that were already printed into the
// command's exit error.
func reportJoined(err error) error {
	if err != nil {
		return errReported
	}
	return nil
}
