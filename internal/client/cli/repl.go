package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Update(ctx context.Context) error
	Enroll(ctx context.Context) error
	Delete(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Snapshot(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the registerface CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate with a face descriptor
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - profile                         show the current user
//	  - update                          change name and email
//	  - enroll                          replace the enrolled face
//	  - snapshot upload <kind> <file>   upload a JPEG snapshot
//	  - snapshot get <kind> <file>      download the latest snapshot
//	  - list [limit] [offset]           list registered users
//	  - delete                          delete the account
//	  - logout                          forget the session
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("rf %s> ", statusFn()))
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
				printlnFn("Available commands: profile, update, enroll, snapshot, (l)ist, delete, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.Update(ctx)

		case "enroll":
			_ = a.Enroll(ctx)

		case "snapshot":
			_ = a.Snapshot(ctx, args)

		case "l", "list":
			_ = a.List(ctx, args)

		case "delete":
			_ = a.Delete(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
