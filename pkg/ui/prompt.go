package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ErrCancelled is returned when input ends before the user answered.
var ErrCancelled = errors.New("prompt cancelled")

// Prompter asks questions on a line-oriented terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // terminal file descriptor for hidden input; -1 when not a terminal
}

// NewPrompter creates a Prompter reading answers from in and writing questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, fd: -1}
}

// NewTerminalPrompter creates a Prompter bound to stdin/stdout.
func NewTerminalPrompter() *Prompter {
	p := NewPrompter(os.Stdin, os.Stdout)
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		p.fd = fd
	}
	return p
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Text asks for a free-text answer. An empty answer yields def.
func (p *Prompter) Text(label, def string) (string, error) {
	fmt.Fprintf(p.out, "? %s ", label)
	if def != "" {
		fmt.Fprintf(p.out, "(default: %s) ", def)
	}

	input, err := p.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		input = def
	}
	return input, nil
}

// Required asks for a free-text answer until a non-empty one is given.
func (p *Prompter) Required(label string) (string, error) {
	for {
		input, err := p.Text(label, "")
		if err != nil {
			return "", err
		}
		if input != "" {
			return input, nil
		}
		fmt.Fprintln(p.out, "A value is required.")
	}
}

// Select asks the user to choose one of options, by number or by name.
func (p *Prompter) Select(label string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("no options to select from")
	}

	fmt.Fprintf(p.out, "? %s\n", label)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}

	for {
		fmt.Fprintf(p.out, "Select (1-%d): ", len(options))
		input, err := p.readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			continue
		}

		if idx, convErr := strconv.Atoi(input); convErr == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1], nil
		}
		for _, opt := range options {
			if strings.EqualFold(opt, input) {
				return opt, nil
			}
		}
		fmt.Fprintln(p.out, "Invalid selection.")
	}
}

// Confirm asks a yes/no question. An empty answer yields def.
func (p *Prompter) Confirm(label string, def bool) (bool, error) {
	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}

	fmt.Fprintf(p.out, "? %s %s ", label, suffix)

	input, err := p.readLine()
	if err != nil {
		return false, err
	}

	input = strings.ToLower(input)
	if input == "" {
		return def, nil
	}
	return strings.HasPrefix(input, "y"), nil
}

// Secret asks for a value without echoing it when attached to a terminal.
func (p *Prompter) Secret(label string) (string, error) {
	fmt.Fprintf(p.out, "? %s ", label)

	if p.fd < 0 {
		return p.readLine()
	}

	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
