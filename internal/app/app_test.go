package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/sollog/internal/config"
	"github.com/five82/sollog/internal/importance"
	"github.com/five82/sollog/internal/ui"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testRenderer(t *testing.T) *ui.Renderer {
	t.Helper()
	p, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default: %v", err)
	}
	return ui.NewRenderer(io.Discard, p)
}

func runString(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := Run(context.Background(), Options{
		In:     strings.NewReader(input),
		Out:    &out,
		Logger: zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String()
}

func TestAnnotate_Scenarios(t *testing.T) {
	r := testRenderer(t)
	ann := NewAnnotator(r)

	tests := []struct {
		name  string
		input string
		imp   importance.Importance
		level string
		msg   string
	}{
		{
			name:  "privilege escalation",
			input: "[2022-08-16T18:31:39Z DEBUG solana_runtime::message_processor::stable_log] ALICE's signer privilege escalated",
			imp:   importance.High,
			level: "DEBUG",
			msg:   "ALICE's signer privilege escalated",
		},
		{
			name:  "info program log drops tag",
			input: "[2022-08-16T18:31:39Z INFO foo] Program log: hello",
			imp:   importance.VeryHigh,
			level: "INFO",
			msg:   "hello",
		},
		{
			name:  "program failure",
			input: "[2022-08-16T18:31:39Z DEBUG bar] Program failed: insufficient funds",
			imp:   importance.Error,
			level: "DEBUG",
			msg:   "Program failed: insufficient funds",
		},
		{
			name:  "trace keeps process_instruction tag",
			input: "[2022-08-16T18:31:39Z TRACE solana_rbpf::vm] process_instruction: executing",
			imp:   importance.Low,
			level: "TRACE",
			msg:   "process_instruction: executing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, outcome := ann.Annotate(tt.input)
			if outcome != Annotated {
				t.Fatalf("Annotate outcome = %v, want Annotated", outcome)
			}
			if want := r.Render(tt.imp, tt.level, tt.msg); got != want {
				t.Errorf("Annotate = %q, want %q", got, want)
			}
		})
	}
}

func TestAnnotate_PassThrough(t *testing.T) {
	ann := NewAnnotator(testRenderer(t))

	inputs := []string{
		"",
		"Validator identity: 7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2",
		"[2022-08-16T18:31:39Z WARN solana_core] slow replay",
		"[2022-08-16T18:31:39Z DEBUG solana_core]",
	}
	for _, in := range inputs {
		got, outcome := ann.Annotate(in)
		if outcome != PassedThrough {
			t.Errorf("Annotate(%q) outcome = %v, want PassedThrough", in, outcome)
		}
		if got != in {
			t.Errorf("Annotate(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestAnnotate_InvalidUTF8(t *testing.T) {
	ann := NewAnnotator(testRenderer(t))

	in := "[ts INFO foo] Program log: \xff\xfe"
	got, outcome := ann.Annotate(in)
	if outcome != InvalidUTF8 {
		t.Fatalf("Annotate outcome = %v, want InvalidUTF8", outcome)
	}
	if got != in {
		t.Fatalf("Annotate = %q, want input unchanged", got)
	}
}

func TestRun_PreservesOrderAndCount(t *testing.T) {
	var in strings.Builder
	var want []string
	ann := NewAnnotator(testRenderer(t))
	for i := 0; i < 3*lineQueue; i++ {
		var line string
		switch i % 3 {
		case 0:
			line = fmt.Sprintf("[ts INFO foo] Program log: line %d", i)
		case 1:
			line = fmt.Sprintf("plain line %d", i)
		default:
			line = fmt.Sprintf("[ts DEBUG bar] Program failed: attempt %d", i)
		}
		in.WriteString(line + "\n")
		annotated, _ := ann.Annotate(line)
		want = append(want, annotated)
	}

	got := strings.Split(strings.TrimSuffix(runString(t, in.String()), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Run output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_PassThroughIsByteIdentical(t *testing.T) {
	input := "not a runtime line\r\n\nanother one\n"
	if got := runString(t, input); got != input {
		t.Fatalf("Run = %q, want %q", got, input)
	}
}

func TestRun_TerminatesFinalLine(t *testing.T) {
	if got := runString(t, "first\nlast"); got != "first\nlast\n" {
		t.Fatalf("Run = %q, want %q", got, "first\nlast\n")
	}
}

func TestRun_EmptyInput(t *testing.T) {
	if got := runString(t, ""); got != "" {
		t.Fatalf("Run = %q, want empty output", got)
	}
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRun_WriteErrorIsReturned(t *testing.T) {
	boom := errors.New("broken pipe")
	err := Run(context.Background(), Options{
		In:     strings.NewReader("one\ntwo\n"),
		Out:    errWriter{boom},
		Logger: zaptest.NewLogger(t),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Run error = %v, want it to wrap %v", err, boom)
	}
	if !strings.Contains(err.Error(), "write line") {
		t.Fatalf("Run error = %q, want it to mention write line", err.Error())
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestRun_WritesLinesReadBeforeReadError(t *testing.T) {
	var in strings.Builder
	for i := 0; i < 2*lineQueue; i++ {
		fmt.Fprintf(&in, "plain line %d\n", i)
	}
	eio := errors.New("input/output error")

	for trial := 0; trial < 20; trial++ {
		var out bytes.Buffer
		err := Run(context.Background(), Options{
			In:     io.MultiReader(strings.NewReader(in.String()), failingReader{eio}),
			Out:    &out,
			Logger: zaptest.NewLogger(t),
		})
		if !errors.Is(err, eio) {
			t.Fatalf("Run error = %v, want it to wrap %v", err, eio)
		}
		if got := out.String(); got != in.String() {
			t.Fatalf("trial %d: wrote %d of %d lines before the read error", trial, strings.Count(got, "\n"), 2*lineQueue)
		}
	}
}

func TestRun_WriteErrorWhileInputIdle(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	boom := errors.New("broken pipe")
	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(context.Background(), Options{In: pr, Out: errWriter{boom}, Logger: zaptest.NewLogger(t)})
	}()

	if _, err := io.WriteString(pw, "only line\n"); err != nil {
		t.Fatalf("write to pipe: %v", err)
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, boom) {
			t.Fatalf("Run error = %v, want it to wrap %v", err, boom)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after the write failed")
	}
}

func TestRun_LogsCountsAtInfo(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	input := "[ts INFO foo] Program log: hello\nplain\n\xff\n"
	err := Run(context.Background(), Options{
		In:     strings.NewReader(input),
		Out:    io.Discard,
		Logger: zap.New(core),
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	entries := logs.FilterMessage("end of stream").All()
	if len(entries) != 1 {
		t.Fatalf("got %d end of stream entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	want := map[string]interface{}{
		"lines":          int64(3),
		"annotated":      int64(1),
		"passed_through": int64(1),
		"invalid_utf8":   int64(1),
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("end of stream fields mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_CancelWhileReadBlocked(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, Options{In: pr, Out: &out, Logger: zaptest.NewLogger(t)})
	}()

	if _, err := io.WriteString(pw, "streamed line\n"); err != nil {
		t.Fatalf("write to pipe: %v", err)
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
