package textinput

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// StdinSource reads one command per line from a reader, normally
// os.Stdin. Blank lines are skipped.
type StdinSource struct {
	in    io.Reader
	lines chan string
	once  sync.Once
}

func NewStdinSource(in io.Reader) *StdinSource {
	return &StdinSource{
		in:    in,
		lines: make(chan string),
	}
}

func (s *StdinSource) Name() string {
	return "stdin"
}

func (s *StdinSource) Start(_ context.Context) error {
	// The read on s.in cannot be cancelled; the goroutine exits when
	// the reader hits EOF or errors.
	s.once.Do(func() {
		go func() {
			defer close(s.lines)
			scanner := bufio.NewScanner(s.in)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				s.lines <- line
			}
		}()
	})
	return nil
}

func (s *StdinSource) Stop() error {
	return nil
}

func (s *StdinSource) NextCommand(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}
