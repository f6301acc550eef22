package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/five82/sollog/internal/config"
	"github.com/five82/sollog/internal/ui"
)

// Options configure a sollog run.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Logger *zap.Logger // nil discards diagnostics
}

// Run annotates In onto Out until In is exhausted or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	palette, err := config.Default()
	if err != nil {
		return err
	}

	ann := NewAnnotator(ui.NewRenderer(opts.Out, palette))

	logger.Debug("annotating stream")
	if err := pipe(ctx, opts.In, opts.Out, ann, logger); err != nil {
		return fmt.Errorf("annotate stream: %w", err)
	}
	return nil
}
