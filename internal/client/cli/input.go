package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetTextWithDefault reads a single line, returning def when the user
// enters nothing. Used by edit flows where blank keeps the current value.
func GetTextWithDefault(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	label := prompt
	if def != "" {
		label = fmt.Sprintf("%s [%s]", prompt, def)
	}
	line, err := GetSimpleText(reader, label, w)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Confirm asks a yes/no question and reports whether the user agreed.
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	line, err := GetSimpleText(reader, prompt+" (y/n)", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// GetPasscode prints a prompt to w and reads the shared passcode from the
// user's terminal without echo. A newline is printed after the read to
// keep the UI tidy.
func GetPasscode(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter passcode: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
