package logtail

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line is one line of input and the terminator that ended it.
type Line struct {
	Text string
	EOL  string // "\n", "\r\n", or "" for a final unterminated line
}

const readBufferSize = 64 * 1024

// Scan reads lines from r and sends them to out in order until r is
// exhausted or ctx is cancelled. Lines of any length are accepted. out is
// closed when Scan returns. End of input is not an error.
func Scan(ctx context.Context, r io.Reader, out chan<- Line) error {
	defer close(out)

	reader := bufio.NewReaderSize(r, readBufferSize)
	for {
		text, err := reader.ReadString('\n')
		if text != "" {
			select {
			case out <- split(text):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}
	}
}

func split(text string) Line {
	switch {
	case strings.HasSuffix(text, "\r\n"):
		return Line{Text: text[:len(text)-2], EOL: "\r\n"}
	case strings.HasSuffix(text, "\n"):
		return Line{Text: text[:len(text)-1], EOL: "\n"}
	default:
		return Line{Text: text}
	}
}
