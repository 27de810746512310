package tui

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/spacetris/internal/core"
)

// starStep is how often stars advance.
const starStep = 200 * time.Millisecond

type star struct {
	x, y int
	size int // 1 small, 2 medium, 3 large; also rows moved per step
}

var starGlyphs = [...]struct {
	r rune
	c core.Color
}{
	{},
	{'.', core.ColorGray},
	{'+', core.ColorWhite},
	{'*', core.ColorBrightWhite},
}

// Starfield is the scrolling background behind the play field.
// Larger stars fall faster and reappear at the top once they leave the screen.
type Starfield struct {
	width, height int
	stars         []star
	rng           *rand.Rand
	acc           time.Duration
}

// NewStarfield scatters stars over a w x h area.
func NewStarfield(w, h int, seed int64) *Starfield {
	sf := &Starfield{rng: rand.New(rand.NewSource(seed))} //#nosec G404 -- background decoration
	sf.Resize(w, h)
	return sf
}

// Resize rescatters the stars for a new area.
func (sf *Starfield) Resize(w, h int) {
	sf.width, sf.height = w, h
	n := w * h / 40
	sf.stars = make([]star, n)
	for i := range sf.stars {
		sf.stars[i] = star{
			x:    sf.rng.Intn(max(w, 1)),
			y:    sf.rng.Intn(max(h, 1)),
			size: 1 + i%3,
		}
	}
}

// Update advances the stars by however many steps dt covers.
func (sf *Starfield) Update(dt time.Duration) {
	sf.acc += dt
	for sf.acc >= starStep {
		sf.acc -= starStep
		sf.step()
	}
}

func (sf *Starfield) step() {
	for i := range sf.stars {
		st := &sf.stars[i]
		st.y += st.size
		if st.y >= sf.height {
			st.y = 0
			st.x = sf.rng.Intn(max(sf.width, 1))
		}
	}
}

// Draw paints the stars onto s.
func (sf *Starfield) Draw(s *core.Screen) {
	for _, st := range sf.stars {
		g := starGlyphs[st.size]
		s.SetColored(st.x, st.y, g.r, g.c)
	}
}

// Len returns the number of stars.
func (sf *Starfield) Len() int {
	return len(sf.stars)
}
