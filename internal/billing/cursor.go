package billing

// NoSelection is the cursor position when nothing is highlighted.
const NoSelection = -1

// Cursor is the keyboard highlight over a suggestion list. Movement wraps at
// both ends. The zero value is not usable; start from NewCursor.
type Cursor struct {
	index int
}

func NewCursor() Cursor { return Cursor{index: NoSelection} }

// Index is the highlighted position or NoSelection.
func (c Cursor) Index() int { return c.index }

// Down moves to the next of n entries, jumping to the first from NoSelection.
func (c *Cursor) Down(n int) {
	if n <= 0 {
		return
	}
	if c.index < 0 || c.index >= n-1 {
		c.index = 0
		return
	}
	c.index++
}

// Up moves to the previous of n entries, jumping to the last from NoSelection.
func (c *Cursor) Up(n int) {
	if n <= 0 {
		return
	}
	if c.index <= 0 || c.index >= n {
		c.index = n - 1
		return
	}
	c.index--
}

func (c *Cursor) Reset() { c.index = NoSelection }

// Selected reports whether the cursor points inside a list of n entries.
func (c Cursor) Selected(n int) bool {
	return c.index >= 0 && c.index < n
}
