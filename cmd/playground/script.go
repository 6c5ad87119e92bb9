package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/rover-playground/internal/sim"
)

// segment holds one input for a stretch of simulated time.
type segment struct {
	Input    sim.Input
	Duration time.Duration
}

// parseScript parses a drive script such as "F:2s,FL:1.5s,N:500ms".
// Keys are F (forward), B (backward), L (left), R (right) in any
// combination, or N for no input. Case is ignored.
func parseScript(script string) ([]segment, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, fmt.Errorf("empty script")
	}

	parts := strings.Split(script, ",")
	out := make([]segment, 0, len(parts))
	for i, part := range parts {
		keys, dur, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("segment %d %q: want KEYS:DURATION", i+1, part)
		}

		in, err := parseKeys(keys)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}

		d, err := time.ParseDuration(strings.TrimSpace(dur))
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("segment %d: duration must be positive", i+1)
		}

		out = append(out, segment{Input: in, Duration: d})
	}
	return out, nil
}

func parseKeys(keys string) (sim.Input, error) {
	var in sim.Input
	keys = strings.ToUpper(strings.TrimSpace(keys))
	if keys == "" {
		return in, fmt.Errorf("no keys")
	}
	if keys == "N" {
		return in, nil
	}
	for _, k := range keys {
		switch k {
		case 'F':
			in.Forward = true
		case 'B':
			in.Backward = true
		case 'L':
			in.Left = true
		case 'R':
			in.Right = true
		default:
			return sim.Input{}, fmt.Errorf("unknown key %q", k)
		}
	}
	return in, nil
}

// frames returns how many fixed steps of dt cover d, at least one.
func (s segment) frames(dt time.Duration) int {
	n := int((s.Duration + dt/2) / dt)
	return max(n, 1)
}

func (s segment) keys() string {
	var b strings.Builder
	for _, k := range []struct {
		on bool
		c  byte
	}{{s.Input.Forward, 'F'}, {s.Input.Backward, 'B'}, {s.Input.Left, 'L'}, {s.Input.Right, 'R'}} {
		if k.on {
			b.WriteByte(k.c)
		}
	}
	if b.Len() == 0 {
		return "N"
	}
	return b.String()
}
