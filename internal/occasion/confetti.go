package occasion

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	framesPerSecond = 30
	gravity         = 0.35
	maxFallSpeed    = 1.4
	swayFrequency   = 4.0
	swayDamping     = 0.15
)

var glyphs = []rune{'*', '•', '●', '▪', '▲', '♦'}

// particle is one falling confetto. Horizontal motion eases toward a
// drift target on a spring, vertical motion is plain gravity capped at
// a terminal speed.
type particle struct {
	x, y     float64
	velX     float64
	velY     float64
	driftTo  float64
	glyph    rune
	color    colorful.Color
	age, ttl int
}

// Field is a deterministic confetti simulation over a cell grid. The
// same seed and the same sequence of Spawn and Step calls always
// produce the same frames.
type Field struct {
	width, height int
	rng           *rand.Rand
	spring        harmonica.Spring
	palette       []colorful.Color
	fade          colorful.Color
	particles     []*particle
}

// NewField creates a confetti field of the given size. Colors are hex
// strings, typically an occasion's palette; unparsable entries are
// skipped and a plain white palette is the fallback.
func NewField(width, height int, seed int64, colors []string) *Field {
	palette := make([]colorful.Color, 0, len(colors))
	for _, hex := range colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		palette = append(palette, c)
	}
	if len(palette) == 0 {
		palette = []colorful.Color{{R: 1, G: 1, B: 1}}
	}

	fade, _ := colorful.Hex("#000000")

	return &Field{
		width:   width,
		height:  height,
		rng:     rand.New(rand.NewSource(seed)),
		spring:  harmonica.NewSpring(harmonica.FPS(framesPerSecond), swayFrequency, swayDamping),
		palette: palette,
		fade:    fade,
	}
}

// Resize changes the grid size. Particles now outside the grid expire
// on the next step.
func (f *Field) Resize(width, height int) {
	f.width = width
	f.height = height
}

// Spawn adds n particles along the top edge.
func (f *Field) Spawn(n int) {
	for i := 0; i < n; i++ {
		x := f.rng.Float64() * float64(f.width)
		p := &particle{
			x:       x,
			y:       -f.rng.Float64() * 2,
			velY:    f.rng.Float64() * 0.5,
			driftTo: x + (f.rng.Float64()-0.5)*float64(f.width)/3,
			glyph:   glyphs[f.rng.Intn(len(glyphs))],
			color:   f.palette[f.rng.Intn(len(f.palette))],
			ttl:     f.height*2 + f.rng.Intn(f.height),
		}
		f.particles = append(f.particles, p)
	}
}

// Step advances the simulation one frame. Particles fall under
// gravity, sway toward their drift target, and expire when they leave
// the grid or outlive their ttl.
func (f *Field) Step() {
	alive := f.particles[:0]
	for _, p := range f.particles {
		p.age++
		p.velY += gravity
		if p.velY > maxFallSpeed {
			p.velY = maxFallSpeed
		}
		p.y += p.velY
		p.x, p.velX = f.spring.Update(p.x, p.velX, p.driftTo)

		if p.age > p.ttl || p.y > float64(f.height) {
			continue
		}
		// Wrap horizontally so sway never loses a particle off-screen.
		if p.x < 0 {
			p.x += float64(f.width)
			p.driftTo += float64(f.width)
		} else if p.x >= float64(f.width) {
			p.x -= float64(f.width)
			p.driftTo -= float64(f.width)
		}
		alive = append(alive, p)
	}
	f.particles = alive
}

// Count returns the number of live particles.
func (f *Field) Count() int {
	return len(f.particles)
}

// Done reports whether the field has burned out.
func (f *Field) Done() bool {
	return len(f.particles) == 0
}

// Render paints the current frame as a width x height block of cells.
// Older particles fade toward black so the celebration dies down
// instead of cutting off.
func (f *Field) Render() string {
	type cell struct {
		glyph rune
		color colorful.Color
	}
	grid := make(map[[2]int]cell, len(f.particles))
	for _, p := range f.particles {
		col, row := int(p.x), int(p.y)
		if row < 0 || row >= f.height || col < 0 || col >= f.width {
			continue
		}
		t := float64(p.age) / float64(p.ttl)
		grid[[2]int{row, col}] = cell{
			glyph: p.glyph,
			color: p.color.BlendLuv(f.fade, t*0.7).Clamped(),
		}
	}

	var b strings.Builder
	for row := 0; row < f.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < f.width; col++ {
			c, ok := grid[[2]int{row, col}]
			if !ok {
				b.WriteByte(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.color.Hex()))
			b.WriteString(style.Render(string(c.glyph)))
		}
	}
	return b.String()
}
