// Package console implements the interactive side of the explorer: prompts
// read from an input stream, reports and tables written to an output stream.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// ErrInputClosed is returned when the input stream ends while a prompt is
// waiting for an answer.
var ErrInputClosed = errors.New("input closed")

// Separator is printed between report sections.
var Separator = strings.Repeat("-", 40)

type Console struct {
	in  *bufio.Reader
	out io.Writer
	now func() time.Time

	readerOnce sync.Once
	lines      chan readResult
}

type readResult struct {
	line string
	err  error
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		now:   time.Now,
		lines: make(chan readResult),
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// ask prints prompt and returns the next input line without its terminator.
// A final line lacking a newline is still returned.
func (c *Console) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.printf("%s", prompt)

	line, err := c.readLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readLine waits for the next raw input line or for ctx to end. Lines are read
// by a single background goroutine.
func (c *Console) readLine(ctx context.Context) (string, error) {
	c.readerOnce.Do(func() { go c.readLoop() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return r.line, r.err
	}
}

func (c *Console) readLoop() {
	defer close(c.lines)
	for {
		line, err := c.in.ReadString('\n')
		c.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// askUntil re-prompts until validate accepts the answer.
func (c *Console) askUntil(ctx context.Context, prompt string, validate func(string) (string, error)) (string, error) {
	for {
		answer, err := c.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		if value, err := validate(answer); err == nil {
			return value, nil
		}
	}
}
