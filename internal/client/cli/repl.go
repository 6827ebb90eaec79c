package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. App implements it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Done(ctx context.Context, id string) error
	Rename(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	SetPhoto(ctx context.Context, path string) error
	GetPhoto(ctx context.Context, path string) error
}

// commands that take a single required argument, with its name for the
// usage line.
var withArg = map[string]string{
	"show":   "id",
	"done":   "id",
	"rename": "id",
	"delete": "id",
	"rm":     "id",
	"photo":  "path",
}

// runREPL reads commands from reader until EOF, "exit" or "quit".
//
//	Not logged in: help, register, login, exit
//	Logged in:     help, (l)ist, show <id>, add, done <id>, rename <id>,
//	               delete|rm <id>, me, photo <path>, getphoto [path],
//	               logout, exit
//
// Handlers print their own errors; the loop ignores them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "todo %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if argName, ok := withArg[cmd]; ok && len(args) == 0 {
			fmt.Fprintf(w, "Usage: %s <%s>\n", cmd, argName)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: (l)ist, show, add, done, rename, delete, me, photo, getphoto, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, exit")
			}
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "me":
			_ = a.Me(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "show":
			_ = a.Show(ctx, args[0])
		case "add":
			_ = a.Add(ctx)
		case "done":
			_ = a.Done(ctx, args[0])
		case "rename":
			_ = a.Rename(ctx, args[0])
		case "delete", "rm":
			_ = a.Delete(ctx, args[0])
		case "photo":
			_ = a.SetPhoto(ctx, args[0])
		case "getphoto":
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			_ = a.GetPhoto(ctx, path)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
