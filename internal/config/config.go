package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed palette.toml
var builtinPalette []byte

// Style is a single foreground color with an optional bold weight.
type Style struct {
	Color string `toml:"color"`
	Bold  bool   `toml:"bold"`
}

// LevelColors holds the foreground color of each recognized log level token.
type LevelColors struct {
	Info  string `toml:"info"`
	Debug string `toml:"debug"`
	Trace string `toml:"trace"`
}

// ImportanceStyles holds the message style of each importance.
type ImportanceStyles struct {
	Error    Style `toml:"error"`
	VeryHigh Style `toml:"very_high"`
	High     Style `toml:"high"`
	Medium   Style `toml:"medium"`
	Low      Style `toml:"low"`
}

// Palette is the complete color scheme used to annotate log lines.
type Palette struct {
	Level      LevelColors      `toml:"level"`
	Importance ImportanceStyles `toml:"importance"`
}

// Default returns the palette compiled into the binary.
func Default() (Palette, error) {
	p, err := Parse(builtinPalette)
	if err != nil {
		return Palette{}, fmt.Errorf("load palette: %w", err)
	}
	return p, nil
}

// Parse decodes a TOML palette and checks that every color is set.
func Parse(data []byte) (Palette, error) {
	var p Palette
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Palette{}, fmt.Errorf("parse palette: %w", err)
	}
	p.trim()
	if err := p.validate(); err != nil {
		return Palette{}, err
	}
	return p, nil
}

func (p *Palette) trim() {
	p.Level.Info = strings.TrimSpace(p.Level.Info)
	p.Level.Debug = strings.TrimSpace(p.Level.Debug)
	p.Level.Trace = strings.TrimSpace(p.Level.Trace)
	for _, s := range p.Importance.all() {
		s.Color = strings.TrimSpace(s.Color)
	}
}

func (p Palette) validate() error {
	levels := []struct {
		name  string
		color string
	}{
		{"level.info", p.Level.Info},
		{"level.debug", p.Level.Debug},
		{"level.trace", p.Level.Trace},
		{"importance.error", p.Importance.Error.Color},
		{"importance.very_high", p.Importance.VeryHigh.Color},
		{"importance.high", p.Importance.High.Color},
		{"importance.medium", p.Importance.Medium.Color},
		{"importance.low", p.Importance.Low.Color},
	}
	for _, l := range levels {
		if l.color == "" {
			return fmt.Errorf("palette: %s color is empty", l.name)
		}
	}
	return nil
}

func (s *ImportanceStyles) all() []*Style {
	return []*Style{&s.Error, &s.VeryHigh, &s.High, &s.Medium, &s.Low}
}
