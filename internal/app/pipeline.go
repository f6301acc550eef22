package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/sollog/internal/logtail"
)

// lineQueue bounds how far the reader may run ahead of the writer.
const lineQueue = 256

type counts struct {
	read      int
	annotated int
	passed    int
	invalid   int
}

func (c counts) fields() []zap.Field {
	return []zap.Field{
		zap.Int("lines", c.read),
		zap.Int("annotated", c.annotated),
		zap.Int("passed_through", c.passed),
		zap.Int("invalid_utf8", c.invalid),
	}
}

// pipe copies in to out through ann, one line at a time and in order. It
// returns nil at end of input. Lines read before a read error are still
// written. When ctx is cancelled or a write fails it returns once the writer
// has stopped, without waiting for a read that is still blocked.
func pipe(ctx context.Context, in io.Reader, out io.Writer, ann *Annotator, logger *zap.Logger) error {
	lines := make(chan logtail.Line, lineQueue)
	// gctx stops the reader when the writer fails. The writer only watches
	// ctx so it drains everything Scan queued before a read error.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return logtail.Scan(gctx, in, lines)
	})

	var (
		c        counts
		writeErr error
	)
	writerDone := make(chan struct{})
	g.Go(func() error {
		defer close(writerDone)
		writeErr = writeLines(ctx, out, lines, ann, logger, &c)
		return writeErr
	})

	select {
	case <-writerDone:
	case <-ctx.Done():
		<-writerDone
		logger.Info("stream interrupted", c.fields()...)
		return ctx.Err()
	}
	if writeErr != nil {
		return writeErr
	}

	// The writer saw lines closed, so Scan has already returned.
	if err := g.Wait(); err != nil {
		logger.Info("stream ended on read error", c.fields()...)
		return err
	}
	logger.Info("end of stream", c.fields()...)
	return nil
}

func writeLines(ctx context.Context, w io.Writer, lines <-chan logtail.Line, ann *Annotator, logger *zap.Logger, c *counts) error {
	bw := bufio.NewWriter(w)
	for {
		select {
		case <-ctx.Done():
			_ = bw.Flush()
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := bw.Flush(); err != nil {
					return fmt.Errorf("write line: %w", err)
				}
				return nil
			}
			c.read++
			text, outcome := ann.Annotate(line.Text)
			switch outcome {
			case Annotated:
				c.annotated++
			case PassedThrough:
				c.passed++
			case InvalidUTF8:
				c.invalid++
				logger.Debug("passing through invalid utf-8 line", zap.Int("line", c.read))
			}

			eol := line.EOL
			if eol == "" {
				eol = "\n"
			}
			if _, err := bw.WriteString(text + eol); err != nil {
				return fmt.Errorf("write line: %w", err)
			}
			// Flush whenever the reader has nothing queued so interactive
			// streams are not held back by the buffer.
			if len(lines) == 0 {
				if err := bw.Flush(); err != nil {
					return fmt.Errorf("write line: %w", err)
				}
			}
		}
	}
}
