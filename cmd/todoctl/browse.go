package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
	"github.com/jsamuelsen11/todo-service/internal/view"
)

var browseHelp = []string{
	"n next page · p previous page · s <all|completed|active> status",
	"f <text> filter (f alone clears) · t <row> toggle · d <row> delete",
	"a <title> add · e <row> <title> edit · b back · r reload · q quit",
}

func newBrowseCmd(e *env) *cobra.Command {
	flags := &listFlags{}
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through todos interactively, one command per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			initial := flags.state()
			history := view.NewHistory(initial)
			ctl := view.NewListController(e.cache, history, initial)
			defer ctl.Close()

			b := &browser{
				ctl:     ctl,
				history: history,
				p:       newPrinter(cmd.OutOrStdout()),
				in:      bufio.NewScanner(cmd.InOrStdin()),
			}
			return b.run(cmd.Context())
		},
	}
	flags.register(cmd)
	return cmd
}

type browser struct {
	ctl     *view.ListController
	history *view.History
	p       *printer
	in      *bufio.Scanner
}

func (b *browser) run(ctx context.Context) error {
	b.p.help(browseHelp...)
	b.render(ctx)

	for b.in.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(b.in.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
			continue
		case "q", "quit":
			return nil
		case "h", "?", "help":
			b.p.help(browseHelp...)
			continue
		case "n", "next":
			b.ctl.NextPage()
		case "p", "prev":
			b.ctl.PrevPage()
		case "s", "status":
			b.ctl.SetStatus(todo.Status(arg))
		case "f", "filter":
			// A submitted line is a finished edit, so apply it now.
			b.ctl.TypeFilter(arg)
			b.ctl.FlushFilter()
		case "b", "back":
			if s, ok := b.history.Back(); ok {
				b.ctl.Sync(s)
			}
		case "r", "reload":
		case "t", "toggle":
			b.toggle(ctx, arg)
		case "d", "delete":
			b.remove(ctx, arg)
		case "a", "add":
			b.save(ctx, "", arg)
		case "e", "edit":
			row, title, _ := strings.Cut(arg, " ")
			if t, ok := b.row(ctx, row); ok {
				b.save(ctx, t.ID, title)
			}
		default:
			b.p.fail(fmt.Errorf("unknown command %q, try h", cmd))
			continue
		}
		b.render(ctx)
	}
	return b.in.Err()
}

// render shows the page for the current state. When the fetch fails the
// last page shown stays on screen.
func (b *browser) render(ctx context.Context) {
	state := b.ctl.State()
	res, err := b.ctl.Load(ctx)
	if err != nil {
		b.p.fail(err)
		if prev, ok := b.ctl.Peek(ctx); ok {
			b.p.page(state, prev)
		}
		return
	}
	b.p.page(state, res)
}

// row resolves a 1-based row number on the page currently shown.
func (b *browser) row(ctx context.Context, arg string) (todo.Todo, bool) {
	n, err := strconv.Atoi(arg)
	shown, ok := b.ctl.Peek(ctx)
	if err != nil || !ok || n < 1 || n > len(shown.Page.Todos) {
		b.p.fail(fmt.Errorf("no row %q on this page", arg))
		return todo.Todo{}, false
	}
	return shown.Page.Todos[n-1], true
}

func (b *browser) toggle(ctx context.Context, arg string) {
	t, ok := b.row(ctx, arg)
	if !ok {
		return
	}
	if err := b.ctl.Toggle(ctx, t.ID, !t.Completed); err != nil {
		b.p.fail(err)
	}
}

func (b *browser) remove(ctx context.Context, arg string) {
	t, ok := b.row(ctx, arg)
	if !ok {
		return
	}
	if err := b.ctl.Delete(ctx, t.ID); err != nil {
		b.p.fail(err)
		return
	}
	b.p.ok("Deleted " + t.Title)
}

func (b *browser) save(ctx context.Context, id, title string) {
	if err := b.ctl.Save(ctx, ports.SaveTodoInput{ID: id, Title: title}); err != nil {
		b.p.fail(err)
		return
	}
	b.p.ok("Saved " + todo.NormalizeTitle(title))
}
