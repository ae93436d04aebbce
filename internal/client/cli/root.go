package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	prompt() string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddTask(ctx context.Context) error
	ListTasks(ctx context.Context, args []string) error
	SearchTasks(ctx context.Context, query string) error
	CompleteTask(ctx context.Context, id string) error
	UpdateTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
}

func (a *App) prompt() string {
	if a.session != nil {
		return fmt.Sprintf("tkli (%s)> ", a.session.Username)
	}
	return "tkli> "
}

// Root starts the interactive loop on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to TaskKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, scanner, a)
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Commands:
//
//	Not logged in:
//	  - help              — show available commands
//	  - register          — create an account
//	  - login             — authenticate
//	  - exit | quit       — leave the program
//
//	Logged in:
//	  - add               — create a task (interactive prompts)
//	  - list [pending|completed] [due|priority|title]
//	  - sort <due|priority|title>
//	  - search <text>     — local substring search
//	  - done <id>         — mark a task completed
//	  - update <id>       — edit a task (interactive prompts)
//	  - delete <id>       — remove a task
//	  - logout            — drop the session
func runREPL(ctx context.Context, scanner *bufio.Scanner, a execIface) {

	for {
		fmt.Print(a.prompt())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, list, sort, search, done, update, delete, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "add":
			err = a.AddTask(ctx)
		case "list":
			err = a.ListTasks(ctx, args)
		case "sort":
			// a shorthand for listing everything ordered by the given key
			if len(args) != 1 {
				printlnFn("Usage: sort <due|priority|title>")
				continue
			}
			err = a.ListTasks(ctx, args)
		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <text>")
				continue
			}
			err = a.SearchTasks(ctx, strings.Join(args, " "))
		case "done":
			if len(args) != 1 {
				printlnFn("Usage: done <id>")
				continue
			}
			err = a.CompleteTask(ctx, args[0])
		case "update":
			if len(args) != 1 {
				printlnFn("Usage: update <id>")
				continue
			}
			err = a.UpdateTask(ctx, args[0])
		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			err = a.DeleteTask(ctx, args[0])
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
