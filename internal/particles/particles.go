// Package particles simulates the decorative particle field drawn behind
// the calculator. Particles drift toward the direction the mouse last
// moved in and wrap around the window edges.
package particles

const (
	// Steer scales the mouse direction into a target speed.
	Steer = 0.03
	// Damping is how quickly speed approaches the target each step.
	Damping = 0.1
	// Jitter is the width of the random speed nudge applied each step.
	Jitter = 0.2

	MinSize   = 1.0
	SizeRange = 3.0
)

// Rand is the random source used for placement and jitter.
type Rand interface {
	Float64() float64
}

type Particle struct {
	X, Y           float64
	Size           float64
	SpeedX, SpeedY float64
}

type Field struct {
	Particles []Particle

	width, height float64
	rng           Rand
}

// New scatters n resting particles uniformly over a width x height area.
func New(n int, width, height float64, rng Rand) *Field {
	f := &Field{
		Particles: make([]Particle, n),
		width:     width,
		height:    height,
		rng:       rng,
	}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:    rng.Float64() * width,
			Y:    rng.Float64() * height,
			Size: rng.Float64()*SizeRange + MinSize,
		}
	}
	return f
}

// Resize changes the wrap bounds. Particles outside the new bounds wrap on
// their next step.
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
}

func (f *Field) Size() (width, height float64) { return f.width, f.height }

// Step advances every particle one frame given the current mouse direction.
func (f *Field) Step(dirX, dirY float64) {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.SpeedX += (dirX*Steer - p.SpeedX) * Damping
		p.SpeedY += (dirY*Steer - p.SpeedY) * Damping

		p.SpeedX += (f.rng.Float64() - 0.5) * Jitter
		p.SpeedY += (f.rng.Float64() - 0.5) * Jitter

		p.X = wrap(p.X+p.SpeedX, f.width)
		p.Y = wrap(p.Y+p.SpeedY, f.height)
	}
}

func wrap(v, limit float64) float64 {
	if v < 0 {
		return limit
	}
	if v > limit {
		return 0
	}
	return v
}

// Tracker derives the mouse direction from successive cursor positions.
// The direction keeps its last value while the cursor rests.
type Tracker struct {
	lastX, lastY int
	dirX, dirY   float64
}

// Observe records the cursor position for this frame and returns the
// current direction.
func (t *Tracker) Observe(x, y int) (dirX, dirY float64) {
	if x != t.lastX || y != t.lastY {
		t.dirX = float64(x - t.lastX)
		t.dirY = float64(y - t.lastY)
		t.lastX, t.lastY = x, y
	}
	return t.dirX, t.dirY
}
