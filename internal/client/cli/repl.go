package cli

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

type command struct {
	usage   string
	minArgs int
	// auth marks commands that need a logged-in session.
	auth bool
	run  func(ctx context.Context, args []string) error
}

// execIface is the surface the REPL dispatches to. App satisfies it; tests
// provide a stub.
type execIface interface {
	isLoggedIn() bool
	commands() map[string]command
}

func helpText(a execIface) string {
	var lines []string
	for _, c := range a.commands() {
		if c.auth == a.isLoggedIn() {
			lines = append(lines, "  "+c.usage)
		}
	}
	sort.Strings(lines)
	return "Available commands:\n" + strings.Join(lines, "\n") + "\n  help\n  exit | quit"
}

// runREPL reads one command per line and dispatches it until EOF, "exit" or
// "quit". Command errors are printed and the loop continues.
// The reader is shared with the interactive prompts of login and register.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	cmds := a.commands()
	for {
		printlnFn(fmt.Sprintf("whatsut %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn(helpText(a))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		c, ok := cmds[name]
		switch {
		case !ok:
			printlnFn("Unknown command:", name)
		case c.auth && !a.isLoggedIn():
			printlnFn("Please login first")
		case len(args) < c.minArgs:
			printlnFn("Usage:", c.usage)
		default:
			if err := c.run(ctx, args); err != nil {
				printlnFn("Error:", err)
			}
		}
	}
}
