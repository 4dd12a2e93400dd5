package round

import (
	"bufio"
	"context"
	"io"
	"sync"
)

const maxLineSize = 1 << 20

type lineResult struct {
	line string
	err  error
}

// lineReader turns blocking line reads into cancellable ones. A single
// goroutine owns the underlying reader and hands lines over one at a time.
type lineReader struct {
	r    io.Reader
	ch   chan lineResult
	once sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: r, ch: make(chan lineResult)}
}

func (l *lineReader) start() {
	go func() {
		defer close(l.ch)
		scanner := bufio.NewScanner(l.r)
		scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
		for scanner.Scan() {
			l.ch <- lineResult{line: scanner.Text()}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		l.ch <- lineResult{err: err}
	}()
}

// read waits for the next line without its line terminator.
func (l *lineReader) read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	l.once.Do(l.start)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-l.ch:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}
