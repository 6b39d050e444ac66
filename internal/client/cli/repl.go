package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Theme(ctx context.Context) error
	Set(ctx context.Context, value string) error
	Toggle(ctx context.Context) error
	Save(ctx context.Context) error
	Revert(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a until EOF,
// "exit" or "quit".
//
//	help             show available commands
//	register         create an account
//	login / logout   sign in or out
//	theme            show the current theme
//	set <dark|light> preview a theme
//	toggle           preview the other theme
//	save             keep the previewed theme
//	revert           discard the preview
//	status           show identity, connectivity and theme state
//	exit | quit      leave the program
//
// Commands share reader with the prompts they issue, so piped input works.
// Handler errors are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("learnhub %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: theme, set <dark|light>, toggle, save, revert, status, logout, exit")
			} else {
				printlnFn("Available commands: theme, set <dark|light>, toggle, save, revert, status, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "theme":
			_ = a.Theme(ctx)

		case "set":
			if len(args) != 1 {
				printlnFn("Usage: set <dark|light>")
				continue
			}
			_ = a.Set(ctx, args[0])

		case "toggle":
			_ = a.Toggle(ctx)

		case "save":
			_ = a.Save(ctx)

		case "revert":
			_ = a.Revert(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
