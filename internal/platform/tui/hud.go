package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/rover-playground/internal/core"
	"github.com/vovakirdan/rover-playground/internal/rover"
	"github.com/vovakirdan/rover-playground/internal/sim"
)

// wheelGlyphs animate the wheel phase.
var wheelGlyphs = []rune("|/-\\")

// hudWidth is the width of the readout panel on the right of the map.
const hudWidth = 30

// hudInfo is the per-frame input to the HUD.
type hudInfo struct {
	desc       core.Descriptor
	tel        sim.Telemetry
	state      rover.State
	objectives []core.Objective
	elapsed    time.Duration
	best       time.Duration
	hasBest    bool
}

// formatDuration renders d as mm:ss.t.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := d.Milliseconds() / 100
	return fmt.Sprintf("%02d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return string(r[:1])
	}
	return string(r[:width-1]) + "…"
}

// targetArrow points from the rover toward the target, north up.
func targetArrow(tel sim.Telemetry, target core.Vec3) rune {
	dx, dz := target.X-tel.Position.X, target.Z-tel.Position.Z
	if dx == 0 && dz == 0 {
		return '•'
	}
	// HeadingGlyph expects a yaw; yaw faces (-sin, -cos).
	return HeadingGlyph(math.Atan2(-dx, -dz))
}

func drawHUD(dst *core.Screen, area core.Rect, info hudInfo) {
	for y := area.Y; y < area.Bottom(); y++ {
		dst.SetColored(area.X, y, '│', core.ColorGray)
	}

	x := area.X + 2
	w := area.W - 2
	y := area.Y
	line := func(text string, c core.Color) {
		if y >= area.Bottom() {
			return
		}
		dst.DrawTextColored(x, y, truncate(text, w), c)
		y++
	}

	tel := info.tel
	line(info.desc.Name, core.ColorBrightWhite)
	line(string(info.desc.Difficulty), core.ColorGray)
	y++

	line(fmt.Sprintf("SPEED  %6.1f km/h", tel.Speed), core.ColorBrightCyan)
	line(fmt.Sprintf("HEAD   %6.0f°", Bearing(tel.Yaw)), core.ColorWhite)
	line(fmt.Sprintf("POS    %6.1f %6.1f", tel.Position.X, tel.Position.Z), core.ColorWhite)
	line(fmt.Sprintf("ALT    %6.1f m", tel.Position.Y), core.ColorWhite)
	if st := info.state; st.Initialized {
		deg := 180 / math.Pi
		line(fmt.Sprintf("TILT   %+5.1f° %+5.1f° %c", st.Pitch()*deg, st.Roll()*deg, wheelGlyph(st.WheelPhase)), core.ColorGray)
	}
	line(fmt.Sprintf("TARGET %6.1f m %c", tel.DistanceToTarget, targetArrow(tel, info.desc.Target)), core.ColorBrightYellow)
	line(fmt.Sprintf("ODO    %6.1f m", tel.Odometer), core.ColorWhite)
	line("TIME   "+formatDuration(info.elapsed), core.ColorWhite)
	if info.hasBest {
		line("BEST   "+formatDuration(info.best), core.ColorGray)
	}

	state, stateColor := "GROUNDED", core.ColorGreen
	if !tel.Grounded && tel.Tick > 0 {
		state, stateColor = "AIRBORNE", core.ColorBrightCyan
	}
	line("STATE  "+state, stateColor)

	if tel.HazardWarning {
		warn := "! STEEP GROUND"
		if tel.InHazard {
			warn = "! HAZARD ZONE"
		}
		line(warn, core.ColorBrightRed)
	} else {
		y++
	}
	y++

	done := 0
	for _, o := range info.objectives {
		if o.Done {
			done++
		}
	}
	line(fmt.Sprintf("OBJECTIVES %d/%d", done, len(info.objectives)), core.ColorBrightWhite)
	for _, o := range info.objectives {
		mark, c := "[ ] ", core.ColorWhite
		if o.Done {
			mark, c = "[x] ", core.ColorGreen
		}
		line(mark+o.Task, c)
	}
}

// wheelGlyph returns the spinner frame for a wheel phase in radians.
func wheelGlyph(phase float64) rune {
	n := len(wheelGlyphs)
	i := int(math.Floor(phase/(math.Pi/2))) % n
	if i < 0 {
		i += n
	}
	return wheelGlyphs[i]
}

// drawBanner centres a message over area.
func drawBanner(dst *core.Screen, area core.Rect, y int, text string, c core.Color) {
	text = truncate(text, area.W)
	n := len([]rune(text))
	x := area.X + (area.W-n)/2
	// Blank a margin so the map does not run into the message.
	dst.Fill(core.NewRect(max(x-1, area.X), y, min(n+2, area.W), 1), ' ', core.ColorDefault)
	dst.DrawTextColored(x, y, text, c)
}
