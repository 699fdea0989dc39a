package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
	Calendar(ctx context.Context, args []string) error
	Passport(ctx context.Context) error
	Wishlist(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	HighScore(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Reload(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Errors returned by command handlers are printed and the loop
// continues.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprint(w, "ourstory> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			fmt.Fprintln(w, "Available commands: dashboard, (l)ist [filter] [query], show <id>, add,")
			fmt.Fprintln(w, "  edit <id>, delete <id>, fav <id>, calendar <YYYY-MM>, passport,")
			fmt.Fprintln(w, "  wishlist [add|toggle|del ...], profile, record [score], export <file>,")
			fmt.Fprintln(w, "  import <file>, reload, login, logout, exit")

		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "dashboard", "d":
			err = a.Dashboard(ctx)
		case "l", "list":
			err = a.List(ctx, args)
		case "show":
			err = a.Show(ctx, args)
		case "add":
			err = a.Add(ctx)
		case "edit":
			err = a.Edit(ctx, args)
		case "delete", "del":
			err = a.Delete(ctx, args)
		case "fav":
			err = a.Favorite(ctx, args)
		case "calendar", "cal":
			err = a.Calendar(ctx, args)
		case "passport":
			err = a.Passport(ctx)
		case "wishlist", "w":
			err = a.Wishlist(ctx, args)
		case "profile":
			err = a.Profile(ctx)
		case "record":
			err = a.HighScore(ctx, args)
		case "export":
			err = a.Export(ctx, args)
		case "import":
			err = a.Import(ctx, args)
		case "reload":
			err = a.Reload(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}
}
