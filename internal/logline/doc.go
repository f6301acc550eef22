// Package logline extracts the level, source, program tag and message from
// Solana runtime log lines.
//
// # Pattern
//
// Parse applies one fixed expression, compiled once:
//
//	^.+?(DEBUG|INFO|TRACE) ([^\]]+)\] (?:(Program log:|Program|process_instruction:|solana_runtime:) )?(.+)$
//
// which accepts lines shaped like
//
//	[2022-08-16T18:31:39.123Z DEBUG solana_runtime::message_processor::stable_log] Program log: hello
//	 └──────── prefix ───────┘ level └────────────── source ───────────────────┘  tag          body
//
//   - Prefix: at least one character. The first level marker followed by a
//     "]"-terminated source wins.
//   - Source: everything up to the first "]".
//   - Tag: optional, one of "Program log:", "Program",
//     "process_instruction:" or "solana_runtime:" followed by a space. Any
//     other text is left in the body.
//   - Body: the rest of the line, never empty.
//
// # No match
//
// Lines of any other shape return ok == false. That is the normal case for
// validator banners, test runner output and so on, and callers write those
// lines out unchanged.
//
// # Message
//
// Fields.Message drops the tag when it is absent or "Program log:" (program
// output is implied) and otherwise returns "<tag> <body>".
package logline
