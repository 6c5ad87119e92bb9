package tui

import (
	"math"

	"github.com/vovakirdan/rover-playground/internal/core"
	"github.com/vovakirdan/rover-playground/internal/obstacles"
	"github.com/vovakirdan/rover-playground/internal/rover"
	"github.com/vovakirdan/rover-playground/internal/sim"
	"github.com/vovakirdan/rover-playground/internal/terrain"
)

// Map scale in metres per cell. Terminal cells are about twice as tall as wide.
const (
	metresPerCol = 1.5
	metresPerRow = 3.0
)

// reliefRamp shades normalized height from low to high.
var reliefRamp = []rune(" .:-=+*#%@")

// headingGlyphs indexed by screen octant, starting east and turning clockwise.
var headingGlyphs = []rune("→↘↓↙←↖↑↗")

type palette struct {
	low, mid, high core.Color
}

func paletteFor(planet string) palette {
	switch planet {
	case core.PlanetMars:
		return palette{core.ColorRust, core.ColorOrange, core.ColorDust}
	case core.PlanetMoon:
		return palette{core.ColorGray, core.ColorWhite, core.ColorBrightWhite}
	case core.PlanetHumanoid:
		return palette{core.ColorGray, core.ColorGray, core.ColorGray}
	default:
		return palette{core.ColorForest, core.ColorGreen, core.ColorBrightGreen}
	}
}

// MapView draws a top-down view of one session centred on the rover.
type MapView struct {
	desc    core.Descriptor
	grid    *terrain.Grid // nil on flat ground
	rocks   []obstacles.Visual
	hazards []terrain.Hazard
	colors  palette
	lo, hi  float64
}

// NewMapView prepares the static layers of a session: the sampled terrain
// mesh, rock placements and hazard zones.
func NewMapView(s *sim.Session) *MapView {
	d := s.Descriptor()
	v := &MapView{desc: d, colors: paletteFor(d.ID)}

	if d.Terrain {
		v.grid = terrain.Sample(d.ID, terrain.DefaultMeshSize, terrain.DefaultMeshSegments)
		v.lo, v.hi = v.grid.MinMax()
		v.hazards = terrain.Hazards(d.ID)
	}
	if rocks := s.Rocks(); rocks != nil {
		v.rocks = rocks.Visuals()
	}
	return v
}

// HeadingGlyph returns an arrow for yaw as seen from above, north up.
func HeadingGlyph(yaw float64) rune {
	hx, hz := -math.Sin(yaw), -math.Cos(yaw)
	angle := math.Atan2(hz, hx) // screen rows grow toward +Z
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingGlyphs[octant]
}

// Bearing returns the compass heading in degrees, 0 = north (-Z), clockwise.
func Bearing(yaw float64) float64 {
	hx, hz := -math.Sin(yaw), -math.Cos(yaw)
	deg := math.Atan2(hx, -hz) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// shade returns the relief glyph and colour for a height.
func shade(h, lo, hi float64, p palette) (rune, core.Color) {
	t := 0.5
	if hi > lo {
		t = core.ClampF((h-lo)/(hi-lo), 0, 1)
	}
	i := int(t * float64(len(reliefRamp)-1))

	c := p.high
	switch {
	case t < 0.33:
		c = p.low
	case t < 0.66:
		c = p.mid
	}
	return reliefRamp[i], c
}

// Draw renders the map into area of dst around the telemetry position.
func (v *MapView) Draw(dst *core.Screen, area core.Rect, tel sim.Telemetry, state rover.State) {
	cx := area.X + area.W/2
	cy := area.Y + area.H/2
	origin := tel.Position

	toWorld := func(col, row int) (float64, float64) {
		return origin.X + float64(col-cx)*metresPerCol, origin.Z + float64(row-cy)*metresPerRow
	}
	toScreen := func(x, z float64) (int, int) {
		return cx + int(math.Round((x-origin.X)/metresPerCol)), cy + int(math.Round((z-origin.Z)/metresPerRow))
	}

	for row := area.Y; row < area.Bottom(); row++ {
		for col := area.X; col < area.Right(); col++ {
			x, z := toWorld(col, row)
			if math.Abs(x) > rover.WorldLimit || math.Abs(z) > rover.WorldLimit {
				dst.SetColored(col, row, ' ', core.ColorDefault)
				continue
			}
			r, c := v.ground(x, z)
			dst.SetColored(col, row, r, c)
		}
	}

	for _, rk := range v.rocks {
		col, row := toScreen(rk.X, rk.Z)
		if !area.Contains(col, row) {
			continue
		}
		glyph := 'o'
		if rk.ScaleX+rk.ScaleZ > 2 {
			glyph = 'O'
		}
		dst.SetColored(col, row, glyph, core.ColorBrightWhite)
	}

	// Target marker, pinned to the edge when off screen.
	tc, tr := toScreen(v.desc.Target.X, v.desc.Target.Z)
	if area.Contains(tc, tr) {
		dst.SetColored(tc, tr, 'X', core.ColorBrightYellow)
	} else if area.W > 0 && area.H > 0 {
		dst.SetColored(core.Clamp(tc, area.X, area.Right()-1), core.Clamp(tr, area.Y, area.Bottom()-1), '*', core.ColorBrightYellow)
	}

	roverColor := core.ColorBrightWhite
	if !tel.Grounded && state.Initialized {
		roverColor = core.ColorBrightCyan
	}
	if tel.HazardWarning {
		roverColor = core.ColorBrightRed
	}
	dst.SetColored(cx, cy, HeadingGlyph(tel.Yaw), roverColor)
}

func (v *MapView) ground(x, z float64) (rune, core.Color) {
	if v.grid == nil {
		// Flat lab floor: a 10 m tile grid so motion is visible.
		if math.Mod(math.Abs(x), 10) < metresPerCol || math.Mod(math.Abs(z), 10) < metresPerRow {
			return '·', v.colors.low
		}
		return ' ', v.colors.low
	}

	r, c := shade(v.grid.HeightAt(x, z), v.lo, v.hi, v.colors)
	for _, h := range v.hazards {
		if h.Contains(x, z) {
			c = core.ColorRed
			break
		}
	}
	return r, c
}

// Relief renders a whole sampled grid into a cols x rows screen, north up.
func Relief(g *terrain.Grid, cols, rows int) *core.Screen {
	s := core.NewScreen(cols, rows)
	if cols <= 0 || rows <= 0 {
		return s
	}

	lo, hi := g.MinMax()
	p := paletteFor(g.Planet)
	half := g.Size / 2
	for row := 0; row < rows; row++ {
		z := -half + (float64(row)+0.5)*g.Size/float64(rows)
		for col := 0; col < cols; col++ {
			x := -half + (float64(col)+0.5)*g.Size/float64(cols)
			r, c := shade(g.HeightAt(x, z), lo, hi, p)
			s.SetColored(col, row, r, c)
		}
	}
	return s
}
