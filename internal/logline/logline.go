package logline

import "regexp"

// Recognized log levels. Any other value is carried through as-is.
const (
	LevelInfo  = "INFO"
	LevelDebug = "DEBUG"
	LevelTrace = "TRACE"
)

// Tag identifies the runtime subsystem that emitted a program message.
type Tag string

// Known program-source tags. The zero Tag means no tag was present.
const (
	TagNone               Tag = ""
	TagProgramLog         Tag = "Program log:"
	TagProgram            Tag = "Program"
	TagProcessInstruction Tag = "process_instruction:"
	TagRuntime            Tag = "solana_runtime:"
)

// Fields holds the parts of a matched runtime log line.
type Fields struct {
	Level  string
	Source string
	Tag    Tag
	Body   string // never empty
}

// Message returns the text shown for the line. The "Program log:" tag is
// implied and dropped along with an absent tag; any other tag prefixes the body.
func (f Fields) Message() string {
	if f.Tag == TagNone || f.Tag == TagProgramLog {
		return f.Body
	}
	return string(f.Tag) + " " + f.Body
}

// Tag alternatives are ordered longest first so "Program log:" wins over "Program".
var linePattern = regexp.MustCompile(
	`^.+?(DEBUG|INFO|TRACE) ([^\]]+)\] (?:(Program log:|Program|process_instruction:|solana_runtime:) )?(.+)$`,
)

// Parse matches line against the runtime log pattern. ok is false when the
// line does not have the expected shape and should be passed through unchanged.
func Parse(line string) (f Fields, ok bool) {
	m := linePattern.FindStringSubmatchIndex(line)
	if m == nil {
		return Fields{}, false
	}
	f = Fields{
		Level:  line[m[2]:m[3]],
		Source: line[m[4]:m[5]],
		Body:   line[m[8]:m[9]],
	}
	if m[6] >= 0 {
		f.Tag = Tag(line[m[6]:m[7]])
	}
	return f, true
}
