package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// IO is everything a session needs from a terminal: ask for a line, print a line.
type IO interface {
	// Prompt writes prompt without a newline and returns the next input line
	// with its line terminator removed. It returns io.EOF once input is exhausted.
	Prompt(prompt string) (string, error)
	Println(a ...any)
}

// Console is the IO used by the CLI, usually over os.Stdin and os.Stdout
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewReader(r), out: w}
}

func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}
