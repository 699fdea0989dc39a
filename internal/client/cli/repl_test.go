package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	calls []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) Login(ctx context.Context) error    { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error   { return s.record("logout") }
func (s *stubExec) Dashboard(ctx context.Context) error { return s.record("dashboard") }
func (s *stubExec) List(ctx context.Context, args []string) error {
	return s.record("list:" + strings.Join(args, ","))
}
func (s *stubExec) Show(ctx context.Context, args []string) error     { return s.record("show") }
func (s *stubExec) Add(ctx context.Context) error                     { return s.record("add") }
func (s *stubExec) Edit(ctx context.Context, args []string) error     { return s.record("edit") }
func (s *stubExec) Delete(ctx context.Context, args []string) error   { return s.record("delete") }
func (s *stubExec) Favorite(ctx context.Context, args []string) error { return s.record("fav") }
func (s *stubExec) Calendar(ctx context.Context, args []string) error { return s.record("calendar") }
func (s *stubExec) Passport(ctx context.Context) error                { return s.record("passport") }
func (s *stubExec) Wishlist(ctx context.Context, args []string) error { return s.record("wishlist") }
func (s *stubExec) Profile(ctx context.Context) error                 { return s.record("profile") }
func (s *stubExec) HighScore(ctx context.Context, args []string) error {
	return s.record("record")
}
func (s *stubExec) Export(ctx context.Context, args []string) error { return s.record("export") }
func (s *stubExec) Import(ctx context.Context, args []string) error { return s.record("import") }
func (s *stubExec) Reload(ctx context.Context) error                { return s.record("reload") }

func runScript(t *testing.T, script string) (*stubExec, string) {
	t.Helper()
	stub := &stubExec{}
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, scanner, &out)
	return stub, out.String()
}

func TestREPL_Dispatch(t *testing.T) {
	stub, _ := runScript(t, "dashboard\nlist trip paris\npassport\nprofile\nexit\n")

	assert.Equal(t, []string{"dashboard", "list:trip,paris", "passport", "profile"}, stub.calls)
}

func TestREPL_Aliases(t *testing.T) {
	stub, _ := runScript(t, "l\nd\nw\ncal 2024-07\nquit\n")

	assert.Equal(t, []string{"list:", "dashboard", "wishlist", "calendar"}, stub.calls)
}

func TestREPL_UnknownCommand(t *testing.T) {
	stub, out := runScript(t, "selfdestruct\nexit\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, out, "Unknown command: selfdestruct")
}

func TestREPL_EmptyLinesSkipped(t *testing.T) {
	stub, _ := runScript(t, "\n\n   \nexit\n")

	assert.Empty(t, stub.calls)
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	stub, _ := runScript(t, "dashboard\n")

	assert.Equal(t, []string{"dashboard"}, stub.calls)
}
