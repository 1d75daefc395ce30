package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/todo-service/internal/adapters/clients/todoapi"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/query"
	"github.com/jsamuelsen11/todo-service/internal/view"
)

const (
	boxChecked   = "☑"
	boxUnchecked = "☐"
	timeLayout   = "2006-01-02 15:04"
)

// printer writes styled output. Styles come from a renderer bound to the
// writer, so output to a pipe or buffer carries no escape codes.
type printer struct {
	w io.Writer

	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
	done    lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted:   r.NewStyle().Faint(true),
		done:    r.NewStyle().Faint(true).Strikethrough(true),
	}
}

func (p *printer) ok(msg string) {
	fmt.Fprintln(p.w, p.success.Render("✔ "+msg))
}

// fail prints err the way a form would show it: field messages when the
// server sent them, otherwise the server's message.
func (p *printer) fail(err error) {
	p.failFor("", err)
}

// failFor is fail with the message prefixed by the item it is about.
func (p *printer) failFor(item string, err error) {
	prefix := "✖ "
	if item != "" {
		prefix += item + ": "
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		fields := make([]string, 0, len(verr.Fields))
		for f := range verr.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintln(p.w, p.failure.Render(prefix+f+": "+verr.Fields[f]))
		}
		return
	}
	fmt.Fprintln(p.w, p.failure.Render(prefix+todoapi.Message(err)))
}

func (p *printer) todo(t *todo.Todo) {
	fmt.Fprintf(p.w, "%s %s\n", checkbox(t.Completed), p.todoTitle(t))
	fmt.Fprintln(p.w, p.muted.Render(fmt.Sprintf("  id %s · created %s · updated %s",
		t.ID, t.CreatedAt.Local().Format(timeLayout), t.UpdatedAt.Local().Format(timeLayout))))
}

// page prints a numbered list. Row numbers start at 1 and are what browse
// commands refer to.
func (p *printer) page(state view.State, res *query.Result) {
	header := fmt.Sprintf("Todos · %s · page %d/%d · %d total",
		state.Status, res.Page.Page, max(res.Page.Pages, 1), res.Page.Total)
	if state.Filter != "" {
		header += fmt.Sprintf(" · filter %q", state.Filter)
	}
	fmt.Fprintln(p.w, p.title.Render(header))
	if res.Placeholder {
		fmt.Fprintln(p.w, p.muted.Render("(loading…)"))
	}

	if len(res.Page.Todos) == 0 {
		fmt.Fprintln(p.w, p.muted.Render("No Todos To Show!"))
		return
	}

	completed := 0
	for i := range res.Page.Todos {
		t := &res.Page.Todos[i]
		if t.Completed {
			completed++
		}
		fmt.Fprintf(p.w, "%2d %s %s %s\n", i+1, checkbox(t.Completed), p.todoTitle(t),
			p.muted.Render(t.ID))
	}
	fmt.Fprintln(p.w, p.muted.Render(fmt.Sprintf("%d of %d on this page completed", completed, len(res.Page.Todos))))
}

func (p *printer) todoTitle(t *todo.Todo) string {
	if t.Completed {
		return p.done.Render(t.Title)
	}
	return t.Title
}

func (p *printer) help(lines ...string) {
	fmt.Fprintln(p.w, p.muted.Render(strings.Join(lines, "\n")))
}

func checkbox(done bool) string {
	if done {
		return boxChecked
	}
	return boxUnchecked
}
