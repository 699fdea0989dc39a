package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  hello world \n"))

	got, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("partial"))

	got, err := GetSimpleText(reader, "p", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", got)
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer

	got, err := GetTextWithDefault(bufio.NewReader(strings.NewReader("\n")), "Title", "keep me", &out)
	require.NoError(t, err)
	assert.Equal(t, "keep me", got)

	got, err = GetTextWithDefault(bufio.NewReader(strings.NewReader("new value\n")), "Title", "keep me", &out)
	require.NoError(t, err)
	assert.Equal(t, "new value", got)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"anything\n", false},
		{"\n", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := Confirm(bufio.NewReader(strings.NewReader(tt.input)), "Sure?", &out)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestGetPasscode_UsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(fd int) ([]byte, error) {
		return []byte("250922"), nil
	}

	var out bytes.Buffer
	got, err := GetPasscode(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("250922"), got)
	assert.Contains(t, out.String(), "Enter passcode")
}
