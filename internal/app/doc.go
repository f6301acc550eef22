// Package app wires the sollog pipeline together.
//
// # Overview
//
// Run reads a Solana runtime log stream and writes it back with each
// recognized line colored by importance. It is the composition root: it
// loads the built-in palette, builds the ui.Renderer and the Annotator, and
// runs the reader/writer pipeline.
//
// # Data Flow
//
//	 stdin
//	   │
//	   ├─> logtail.Scan()          reader goroutine, one Line per input line
//	   │        │ chan Line (bounded)
//	   │        ▼
//	   ├─> writeLines()            writer goroutine
//	   │        ├─> logline.Parse()
//	   │        ├─> importance.ClassifyFields()
//	   │        └─> ui.Renderer.Render()
//	   ▼
//	 stdout
//
// Both goroutines run in an errgroup. A single writer keeps output in input
// order. The writer buffers output and flushes whenever no line is queued.
//
// # Pass-through
//
// Lines that do not match the runtime log pattern are written unchanged, as
// are lines that are not valid UTF-8. No line is ever dropped. A final line
// with no newline is written with one.
//
// # Cancellation and errors
//
// When ctx is cancelled, or a write to Out fails, Run waits for the writer to
// stop and returns. A read blocked on the input is not waited for; the
// process is expected to exit. A read error is returned only after every
// line read before it has been written.
//
// # Logging
//
// Diagnostics go to the zap logger passed in Options, never to Out. The end
// of the stream is logged at info level with counts of lines read,
// annotated, passed through and not valid UTF-8. Each invalid UTF-8 line is
// also logged at debug level, which the sollog binary does not enable.
package app
