// Package geom provides positioned values that announce their movement.
//
// A [Point] holds two coordinates and notifies registered move listeners
// synchronously, inside the setter call that changed it. When SetX returns,
// every listener has already run.
//
//	p := geom.NewPoint(0, 0)
//	unsubscribe := p.OnMove(func() { fmt.Println(p.X(), p.Y()) })
//	p.MoveTo(10, 20) // prints "10 20"
//	unsubscribe()
package geom

// Point is a mutable two-dimensional coordinate pair with move notifications.
// The zero value is a usable point at the origin.
type Point struct {
	x, y      float64
	listeners []*listener
}

type listener struct {
	fn func()
}

// NewPoint returns a point at (x, y).
func NewPoint(x, y float64) *Point {
	return &Point{x: x, y: y}
}

// X returns the horizontal coordinate.
func (p *Point) X() float64 { return p.x }

// Y returns the vertical coordinate.
func (p *Point) Y() float64 { return p.y }

// SetX moves the point horizontally and notifies listeners.
func (p *Point) SetX(x float64) {
	p.x = x
	p.notify()
}

// SetY moves the point vertically and notifies listeners.
func (p *Point) SetY(y float64) {
	p.y = y
	p.notify()
}

// MoveTo sets both coordinates and notifies listeners once.
func (p *Point) MoveTo(x, y float64) {
	p.x, p.y = x, y
	p.notify()
}

// OnMove registers fn to be called after every coordinate change.
// Listeners run in registration order. The returned function removes the
// listener; calling it more than once is a no-op.
func (p *Point) OnMove(fn func()) (unsubscribe func()) {
	l := &listener{fn: fn}
	p.listeners = append(p.listeners, l)
	return func() { p.remove(l) }
}

// Listeners reports how many move listeners are registered.
func (p *Point) Listeners() int { return len(p.listeners) }

func (p *Point) remove(l *listener) {
	for i, cur := range p.listeners {
		if cur == l {
			p.listeners = append(p.listeners[:i:i], p.listeners[i+1:]...)
			return
		}
	}
}

func (p *Point) notify() {
	// A listener may unsubscribe itself while running.
	for _, l := range append([]*listener(nil), p.listeners...) {
		l.fn()
	}
}
