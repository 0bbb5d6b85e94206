// Package score loads declarative choreography documents.
//
// A score is a YAML document describing named animation channels. Each
// channel declares a value type, a starting value and a list of steps that
// mirror the Sequence builder verbs:
//
//	channels:
//	  brightness:
//	    type: scalar
//	    start: 0
//	    steps:
//	      - ramp: {to: 1, duration: 0.5, curve: in-out-quad}
//	      - hold: 2
//	      - ramp: {to: 0, duration: 1, curve: ease-out}
//	  position:
//	    type: vec2
//	    start: [0, 0]
//	    steps:
//	      - ramp: {to: [100, 40], duration: 1}
//	  tint:
//	    type: color
//	    start: red
//	    steps:
//	      - ramp: {to: "#00ff00", duration: 0.25}
//
// Channel accessors build choreo sequences ready to bind on a timeline.
// Colors are written either as hex strings or as SVG 1.1 color names; curves
// are referenced by their curves.ByName name.
package score

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/choreo/pkg/choreo"
	"github.com/go-drift/choreo/pkg/curves"
)

// Channel type names accepted in score documents.
const (
	TypeScalar = "scalar"
	TypeVec2   = "vec2"
	TypeColor  = "color"
)

var (
	// ErrUnknownChannel is returned when a score has no channel with the
	// requested name.
	ErrUnknownChannel = errors.New("unknown channel")
	// ErrChannelType is returned when a channel is accessed as the wrong
	// type or declares an unsupported type.
	ErrChannelType = errors.New("channel type mismatch")
	// ErrUnknownCurve is returned when a step names a curve that is not
	// registered.
	ErrUnknownCurve = errors.New("unknown curve")
)

type document struct {
	Channels map[string]channelSpec `yaml:"channels"`
}

type channelSpec struct {
	Type  string     `yaml:"type"`
	Start yaml.Node  `yaml:"start"`
	Steps []stepSpec `yaml:"steps"`
}

// stepSpec is a one-key mapping: set, hold or ramp.
type stepSpec struct {
	Set  *yaml.Node `yaml:"set"`
	Hold *float64   `yaml:"hold"`
	Ramp *rampSpec  `yaml:"ramp"`
}

type rampSpec struct {
	To       yaml.Node `yaml:"to"`
	Duration float64   `yaml:"duration"`
	Curve    string    `yaml:"curve"`
}

// Score is a parsed choreography document.
type Score struct {
	channels map[string]channelSpec
}

// Parse reads a YAML score document.
func Parse(data []byte) (*Score, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse score: %w", err)
	}
	for name, ch := range doc.Channels {
		switch ch.Type {
		case TypeScalar, TypeVec2, TypeColor:
		default:
			return nil, fmt.Errorf("channel %q: %w: %q", name, ErrChannelType, ch.Type)
		}
		if err := validateSteps(name, ch.Steps); err != nil {
			return nil, err
		}
	}
	return &Score{channels: doc.Channels}, nil
}

// Load reads and parses a score file.
func Load(path string) (*Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read score: %w", err)
	}
	return Parse(data)
}

func validateSteps(channel string, steps []stepSpec) error {
	for i, step := range steps {
		n := 0
		if step.Set != nil {
			n++
		}
		if step.Hold != nil {
			n++
		}
		if step.Ramp != nil {
			n++
		}
		if n != 1 {
			return fmt.Errorf("channel %q step %d: want exactly one of set, hold, ramp", channel, i)
		}
		if step.Ramp != nil {
			if step.Ramp.Duration < 0 {
				return fmt.Errorf("channel %q step %d: negative duration", channel, i)
			}
			if step.Ramp.Curve != "" {
				if _, ok := curves.ByName(step.Ramp.Curve); !ok {
					return fmt.Errorf("channel %q step %d: %w: %q", channel, i, ErrUnknownCurve, step.Ramp.Curve)
				}
			}
		}
	}
	return nil
}

// Names returns the channel names present in the score. The order is
// unspecified.
func (s *Score) Names() []string {
	names := make([]string, 0, len(s.channels))
	for name := range s.channels {
		names = append(names, name)
	}
	return names
}

// Type returns the declared type of a channel.
func (s *Score) Type(name string) (string, error) {
	ch, ok := s.channels[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
	return ch.Type, nil
}

// Scalar builds the sequence for a scalar channel.
func (s *Score) Scalar(name string) (*choreo.Sequence[float64], error) {
	ch, err := s.channel(name, TypeScalar)
	if err != nil {
		return nil, err
	}
	return buildChannel(name, ch, decodeScalar, choreo.LerpFloat64)
}

// Vec2 builds the sequence for a vec2 channel.
func (s *Score) Vec2(name string) (*choreo.Sequence[f64.Vec2], error) {
	ch, err := s.channel(name, TypeVec2)
	if err != nil {
		return nil, err
	}
	return buildChannel(name, ch, decodeVec2, choreo.LerpVec2)
}

// Color builds the sequence for a color channel.
func (s *Score) Color(name string) (*choreo.Sequence[colorful.Color], error) {
	ch, err := s.channel(name, TypeColor)
	if err != nil {
		return nil, err
	}
	return buildChannel(name, ch, decodeColor, choreo.LerpColor)
}

func (s *Score) channel(name, wantType string) (channelSpec, error) {
	ch, ok := s.channels[name]
	if !ok {
		return channelSpec{}, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
	if ch.Type != wantType {
		return channelSpec{}, fmt.Errorf("channel %q: %w: have %s, want %s", name, ErrChannelType, ch.Type, wantType)
	}
	return ch, nil
}

// buildChannel replays a channel's steps through the Sequence builder.
func buildChannel[T any](name string, ch channelSpec, decode func(*yaml.Node) (T, error), lerp choreo.Lerp[T]) (*choreo.Sequence[T], error) {
	start, err := decode(&ch.Start)
	if err != nil {
		return nil, fmt.Errorf("channel %q start: %w", name, err)
	}
	seq := choreo.NewSequence(start, lerp)
	for i, step := range ch.Steps {
		switch {
		case step.Set != nil:
			v, err := decode(step.Set)
			if err != nil {
				return nil, fmt.Errorf("channel %q step %d: %w", name, i, err)
			}
			seq.Set(v)
		case step.Hold != nil:
			seq.Hold(*step.Hold)
		case step.Ramp != nil:
			v, err := decode(&step.Ramp.To)
			if err != nil {
				return nil, fmt.Errorf("channel %q step %d: %w", name, i, err)
			}
			curve := curves.Linear
			if step.Ramp.Curve != "" {
				curve, _ = curves.ByName(step.Ramp.Curve)
			}
			seq.EaseTo(v, step.Ramp.Duration, curve)
		}
	}
	return seq, nil
}

func decodeScalar(node *yaml.Node) (float64, error) {
	var v float64
	if err := node.Decode(&v); err != nil {
		return 0, fmt.Errorf("expected a number: %w", err)
	}
	return v, nil
}

func decodeVec2(node *yaml.Node) (f64.Vec2, error) {
	var parts []float64
	if err := node.Decode(&parts); err != nil {
		return f64.Vec2{}, fmt.Errorf("expected a [x, y] pair: %w", err)
	}
	if len(parts) != 2 {
		return f64.Vec2{}, fmt.Errorf("expected a [x, y] pair, got %d components", len(parts))
	}
	return f64.Vec2{parts[0], parts[1]}, nil
}

func decodeColor(node *yaml.Node) (colorful.Color, error) {
	var sv string
	if err := node.Decode(&sv); err != nil {
		return colorful.Color{}, fmt.Errorf("expected a color string: %w", err)
	}
	if strings.HasPrefix(sv, "#") {
		c, err := colorful.Hex(sv)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("bad hex color %q: %w", sv, err)
		}
		return c, nil
	}
	named, ok := colornames.Map[strings.ToLower(sv)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("unknown color name %q", sv)
	}
	c, _ := colorful.MakeColor(named)
	return c, nil
}
