package geometry

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// FrameInterval is the tick period of the indicator animation.
	FrameInterval = time.Second / 60

	springFrequency = 7.0
	springDamping   = 1.0
	settleEpsilon   = 0.05
)

// Animator eases a displayed extent toward a target with a critically damped
// spring.
type Animator struct {
	spring  harmonica.Spring
	enabled bool

	left, leftVel   float64
	width, widthVel float64
	row             int
	target          Extent
}

// NewAnimator returns an animator. When enabled is false SetTarget jumps.
func NewAnimator(enabled bool) *Animator {
	return &Animator{
		spring:  harmonica.NewSpring(harmonica.FPS(60), springFrequency, springDamping),
		enabled: enabled,
	}
}

// SetTarget moves the destination. The first non-empty target is adopted
// immediately so the indicator does not grow in from the left edge, and so is
// a target on another row. It reports whether frames are needed to reach the
// target.
func (a *Animator) SetTarget(e Extent) bool {
	a.target = e
	if !a.enabled || (a.width == 0 && a.left == 0) || e.Row != a.row {
		a.jump()
		return false
	}
	return !a.Settled()
}

// Step advances one frame and reports whether more frames are needed.
func (a *Animator) Step() bool {
	if a.Settled() {
		a.jump()
		return false
	}
	a.left, a.leftVel = a.spring.Update(a.left, a.leftVel, float64(a.target.Left))
	a.width, a.widthVel = a.spring.Update(a.width, a.widthVel, float64(a.target.Width))
	if a.Settled() {
		a.jump()
		return false
	}
	return true
}

// Settled reports whether the displayed extent has reached the target.
func (a *Animator) Settled() bool {
	return near(a.left, float64(a.target.Left)) &&
		near(a.width, float64(a.target.Width)) &&
		near(a.leftVel, 0) && near(a.widthVel, 0)
}

// Current is the extent to draw this frame.
func (a *Animator) Current() Extent {
	return Extent{
		Row:   a.row,
		Left:  int(math.Round(a.left)),
		Width: int(math.Round(a.width)),
	}
}

// Target is the extent the animator is heading to.
func (a *Animator) Target() Extent {
	return a.target
}

func (a *Animator) jump() {
	a.row = a.target.Row
	a.left, a.leftVel = float64(a.target.Left), 0
	a.width, a.widthVel = float64(a.target.Width), 0
}

func near(a, b float64) bool {
	return math.Abs(a-b) < settleEpsilon
}
