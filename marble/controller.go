package marble

// DefaultRefillKey is the key that refills vacant cells unless overridden.
const DefaultRefillKey = "r"

// Controller is the board state machine. It holds only the fixed session parameters;
// the board itself is passed in and a new one is returned on every transition.
type Controller struct {
	grid      Grid
	refillKey string
	colours   ColourSource
}

// Option configures a Controller.
type Option func(*Controller)

// WithRefillKey sets the key whose press triggers a refill.
func WithRefillKey(key string) Option {
	return func(c *Controller) {
		c.refillKey = key
	}
}

// NewController creates a controller for grid g drawing refill colours from src.
func NewController(g Grid, src ColourSource, opts ...Option) *Controller {
	c := &Controller{
		grid:      g,
		refillKey: DefaultRefillKey,
		colours:   src,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Grid returns the controller's grid parameters.
func (c *Controller) Grid() Grid {
	return c.grid
}

// RefillKey returns the key that triggers a refill.
func (c *Controller) RefillKey() string {
	return c.refillKey
}

// Initial returns a board with one random piece on every grid cell, in row-major order.
func (c *Controller) Initial() Board {
	return Refill(Board{}, c.grid.Centers(), c.colours)
}

// Step applies ev to b. Unknown events leave the board unchanged.
func (c *Controller) Step(b Board, ev Event) Board {
	switch e := ev.(type) {
	case Tick:
		return c.Tick(b)
	case KeyEvent:
		return c.Key(b, e)
	case PointerEvent:
		return c.Pointer(b, e)
	default:
		return b
	}
}

// Tick is the per-frame advance and currently leaves the board unchanged.
func (c *Controller) Tick(b Board) Board {
	return b
}

// Key refills every vacancy when the refill key is pressed.
func (c *Controller) Key(b Board, e KeyEvent) Board {
	if e.Kind != KeyPressed || e.Key != c.refillKey {
		return b
	}
	return Refill(b, Vacancies(b, c.grid), c.colours)
}

// Pointer clears the colour of the piece under a primary click, if any.
func (c *Controller) Pointer(b Board, e PointerEvent) Board {
	if e.Kind != PrimaryClick {
		return b
	}
	target, ok := FindHit(e.Point(), b, c.grid.Radius)
	if !ok {
		return b
	}
	return ClearColour(target, b)
}
