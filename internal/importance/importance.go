package importance

import (
	"strings"

	"github.com/five82/sollog/internal/logline"
)

// Importance is the display priority of a log line. Low through VeryHigh are
// ordered; Error sits outside that order and always gets the heaviest style.
type Importance int

const (
	Low Importance = iota
	Medium
	High
	VeryHigh
	Error
)

func (i Importance) String() string {
	switch i {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case VeryHigh:
		return "very-high"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// errorTriggers are matched against the lower-cased body. They are plain
// substrings, so "fail " matches but "failing " does not.
var errorTriggers = []string{
	"error: ", "error ",
	"err: ", "err ",
	"failure: ", "failure ",
	"failed: ", "failed ",
	"fail: ", "fail ",
}

type line struct {
	level  string
	source string
	tag    logline.Tag
	body   string
}

type rule struct {
	match  func(line) bool
	result Importance
}

// rules are evaluated top to bottom; the first match wins.
var rules = []rule{
	{reportsFailure, Error},
	{levelIs(logline.LevelInfo), VeryHigh},
	{func(l line) bool {
		return l.level == logline.LevelDebug && strings.Contains(l.body, "signer privilege escalated")
	}, High},
	{func(l line) bool {
		return l.level == logline.LevelDebug && l.tag == logline.TagProgramLog
	}, VeryHigh},
	{func(l line) bool {
		return l.level == logline.LevelDebug && strings.HasSuffix(l.source, "stable_log")
	}, Medium},
	{levelIs(logline.LevelDebug), Medium},
	{levelIs(logline.LevelTrace), Low},
}

func reportsFailure(l line) bool {
	body := strings.ToLower(l.body)
	for _, trigger := range errorTriggers {
		if strings.Contains(body, trigger) {
			return true
		}
	}
	return false
}

func levelIs(level string) func(line) bool {
	return func(l line) bool { return l.level == level }
}

// Classify returns the importance of a line from its parsed parts. Unknown
// levels classify as Low.
func Classify(level, source string, tag logline.Tag, body string) Importance {
	l := line{level: level, source: source, tag: tag, body: body}
	for _, r := range rules {
		if r.match(l) {
			return r.result
		}
	}
	return Low
}

// ClassifyFields is Classify for a parsed line.
func ClassifyFields(f logline.Fields) Importance {
	return Classify(f.Level, f.Source, f.Tag, f.Body)
}
