package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Stdio struct {
	in     *bufio.Reader
	out    io.Writer
	source io.Reader
}

func NewStdio() IO {
	return New(os.Stdin, os.Stdout)
}

// New создает IO поверх произвольных потоков (используется в тестах и для pipe)
func New(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{
		in:     bufio.NewReader(in),
		out:    out,
		source: in,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil {
		// последняя строка без перевода строки
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) IsInteractive() bool {
	f, ok := s.source.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
