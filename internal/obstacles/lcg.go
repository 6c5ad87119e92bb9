package obstacles

const (
	lcgModulus    = 2147483647
	lcgMultiplier = 16807
	baseSeed      = 42
)

// lcg is a Park-Miller minimal standard generator. It is tiny, portable and
// produces the same sequence everywhere, which is all rock placement needs.
type lcg struct {
	state int64
}

// seedFor derives the generator seed from the first character of the planet id.
func seedFor(planet string) int64 {
	for _, r := range planet {
		return baseSeed + int64(r)
	}
	return baseSeed
}

func newLCG(seed int64) *lcg {
	s := seed % lcgModulus
	if s <= 0 {
		s += lcgModulus - 1
	}
	return &lcg{state: s}
}

// next returns a value in [0, 1).
func (g *lcg) next() float64 {
	g.state = g.state * lcgMultiplier % lcgModulus
	return float64(g.state-1) / (lcgModulus - 1)
}
