// Package config holds the color palette sollog annotates log lines with.
//
// The palette is a TOML document embedded in the binary and decoded once at
// startup. It is fixed policy: there is no config file on disk, environment
// variable or flag that overrides it.
//
// # TOML Format
//
//	[level]
//	info = "2"
//	debug = "4"
//	trace = "239"
//
//	[importance.error]
//	color = "9"
//	bold = true
//
// Colors are ANSI 256 indexes as understood by lipgloss.Color. Every level
// and every importance (error, very_high, high, medium, low) must have a
// non-empty color; unknown keys are rejected.
package config
