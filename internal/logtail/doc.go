// Package logtail reads a log stream line by line.
//
// Scan feeds a channel with one Line per input line, in input order, and
// closes it at end of stream. Each Line keeps the terminator it arrived
// with so callers can write pass-through lines back byte for byte:
//
//	lines := make(chan logtail.Line, 256)
//	go func() { errCh <- logtail.Scan(ctx, os.Stdin, lines) }()
//	for line := range lines {
//		fmt.Print(line.Text + line.EOL)
//	}
//
// Unlike bufio.Scanner there is no maximum line length. A final line with
// no trailing newline is delivered with an empty EOL.
//
// Read errors are returned wrapped ("read line: ..."); io.EOF is a normal
// end of stream and returns nil.
package logtail
