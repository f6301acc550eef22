// Package ui renders classified runtime log lines as colored terminal text.
//
// # Overview
//
// A Renderer pairs a colored level token with a message styled by its
// importance:
//
//	<level> <message>
//
// Level tokens:
//   - INFO: green
//   - DEBUG: blue
//   - TRACE: dark gray
//   - anything else: uncolored
//
// Messages by importance:
//   - error: bold bright red
//   - very-high: green
//   - high: bold gray
//   - medium: gray (same hue as high, not bold)
//   - low: darkest gray
//
// The colors come from config.Palette. Styles are built on a lipgloss
// renderer pinned to the ANSI 256 profile, so escape sequences are written
// even when stdout is a pipe or a file.
package ui
