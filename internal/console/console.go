// Package console drives the desk page from a line-oriented terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"hrdesk/internal/ui"
)

// Console is the page's event loop. Commands, confirmation answers and
// timer callbacks are handled one at a time on the goroutine running Run.
type Console struct {
	Page    *Page
	Binder  *ui.Binder
	Metrics func() map[string]any

	in     io.Reader
	out    io.Writer
	lines  chan string
	events chan func()
	done   chan struct{}
}

func New(in io.Reader, out io.Writer, assumeYes bool) *Console {
	lines := make(chan string)
	return &Console{
		Page:   NewPage(out, lines, assumeYes),
		in:     in,
		out:    out,
		lines:  lines,
		events: make(chan func(), 16),
		done:   make(chan struct{}),
	}
}

// After delivers fn to the event loop once d has passed. It is dropped when
// the loop has already stopped.
func (c *Console) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() { c.deliver(fn) })
}

func (c *Console) deliver(fn func()) {
	select {
	case c.events <- fn:
	case <-c.done:
	}
}

// Run loads the page and handles events until quit, end of input or ctx is
// done.
func (c *Console) Run(ctx context.Context) error {
	if c.Binder == nil {
		return fmt.Errorf("console has no binder")
	}
	defer close(c.done)
	go c.readLines()

	c.Binder.Reload(ctx)
	fmt.Fprintln(c.out, "type 'help' for commands")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-c.events:
			fn()
		case line, ok := <-c.lines:
			if !ok {
				return nil
			}
			if quit := c.Dispatch(ctx, line); quit {
				return nil
			}
		}
	}
}

func (c *Console) readLines() {
	defer close(c.lines)
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case c.lines <- scanner.Text():
		case <-c.done:
			return
		}
	}
}

type command struct {
	usage string
	run   func(c *Console, ctx context.Context, args string)
}

var commands = map[string]command{
	"show": {"show                 print the form", func(c *Console, _ context.Context, _ string) {
		c.Page.PrintForm()
	}},
	"set": {"set <field> [value]  set a form field", func(c *Console, _ context.Context, args string) {
		name, value, _ := strings.Cut(args, " ")
		if name == "" {
			c.Page.Alert("usage: set <field> [value]")
			return
		}
		c.Page.SetField(name, value)
	}},
	"save": {"save                 save the employee form", func(c *Console, ctx context.Context, _ string) {
		c.Binder.OnSave(ctx)
	}},
	"search": {"search [code]        load an employee by code", func(c *Console, ctx context.Context, args string) {
		if args != "" {
			c.Page.SetField(ui.FieldSearchCode, args)
		}
		c.Binder.OnSearch(ctx)
	}},
	"table": {"table                list employees", func(c *Console, _ context.Context, _ string) {
		c.Page.PrintTable()
	}},
	"row": {"row <n>              load the employee in table row n", func(c *Console, ctx context.Context, args string) {
		n, err := strconv.Atoi(strings.TrimSpace(args))
		cells, ok := c.Page.Row(n)
		if err != nil || !ok {
			c.Page.Alert("no such row")
			return
		}
		c.Binder.OnRowClick(ctx, cells)
	}},
	"delete": {"delete <id>          delete an employee by id", func(c *Console, ctx context.Context, args string) {
		if strings.TrimSpace(args) == "" {
			c.Page.Alert("usage: delete <id>")
			return
		}
		c.Binder.OnDelete(ctx, args)
	}},
	"calculate": {"calculate            compute net salary and receipt", func(c *Console, _ context.Context, _ string) {
		c.Binder.OnCalculatePayroll()
	}},
	"paysave": {"paysave              save the payroll record", func(c *Console, ctx context.Context, _ string) {
		c.Binder.OnSavePayroll(ctx)
	}},
	"key": {"key <label>          press a calculator key", func(c *Console, _ context.Context, args string) {
		c.Binder.OnCalcKey(args)
	}},
	"op": {"op <label>           press a calculator operator", func(c *Console, _ context.Context, args string) {
		c.Binder.OnCalcOp(args)
	}},
	"clear": {"clear                clear the calculator", func(c *Console, _ context.Context, _ string) {
		c.Binder.OnCalcClear()
	}},
	"eq": {"eq                   evaluate the calculator", func(c *Console, _ context.Context, _ string) {
		c.Binder.OnCalcEquals()
	}},
	"print": {"print                print the receipt", func(c *Console, _ context.Context, _ string) {
		c.Binder.OnPrint()
	}},
	"pdf": {"pdf                  download the payroll PDF", func(c *Console, _ context.Context, _ string) {
		c.Binder.OnDownloadPDF()
	}},
	"reload": {"reload               reload the page", func(c *Console, ctx context.Context, _ string) {
		c.Binder.Reload(ctx)
	}},
	"metrics": {"metrics              show backend call counters", func(c *Console, _ context.Context, _ string) {
		if c.Metrics == nil {
			c.Page.Alert("metrics disabled")
			return
		}
		snap := c.Metrics()
		keys := make([]string, 0, len(snap))
		for key := range snap {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(c.out, "%s %v\n", key, snap[key])
		}
	}},
}

// Dispatch runs one command line and reports whether the console should stop.
func (c *Console) Dispatch(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	name, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	switch name {
	case "quit", "exit":
		return true
	case "help":
		c.help()
		return false
	}

	cmd, ok := commands[name]
	if !ok {
		c.Page.Alert("unknown command " + strconv.Quote(name) + ", try 'help'")
		return false
	}
	cmd.run(c, ctx, args)
	return false
}

func (c *Console) help() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(c.out, "  "+commands[name].usage)
	}
	fmt.Fprintln(c.out, "  quit                 leave")
}
