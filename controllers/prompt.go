package controllers

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter is the console the session talks through.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) Print(s string) {
	fmt.Fprint(p.out, s)
}

func (p *Prompter) Println(s string) {
	fmt.Fprintln(p.out, s)
}

// Ask prints the question and returns the next input line with surrounding
// whitespace removed. It returns io.EOF once the input is exhausted.
func (p *Prompter) Ask(question string) (string, error) {
	p.Print(question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askUntil re-asks the question until parse accepts the answer. Parse errors
// are shown to the user; only input errors are returned.
func askUntil[T any](p *Prompter, question string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, perr := parse(answer)
		if perr == nil {
			return v, nil
		}
		p.Println(capitalize(perr.Error()) + ". Try again.")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
