package ezgrid

// HeadingIndex keeps the ordered, unique headings of one axis.
//
// Every heading has a position (its place in iteration order) and a slot (its
// place in the grid's value store). Slots are assigned by Add and never change,
// so Swap only exchanges positions.
type HeadingIndex[H comparable] struct {
	axis      Axis
	headings  []H       // position -> heading
	slots     []int     // position -> slot
	positions map[H]int // heading -> position
}

// NewHeadingIndex creates an empty index for axis.
func NewHeadingIndex[H comparable](axis Axis) *HeadingIndex[H] {
	return &HeadingIndex[H]{
		axis:      axis,
		positions: make(map[H]int),
	}
}

// Len returns the number of headings.
func (x *HeadingIndex[H]) Len() int {
	return len(x.headings)
}

// Has reports whether h is registered.
func (x *HeadingIndex[H]) Has(h H) bool {
	_, ok := x.positions[h]
	return ok
}

// PositionOf returns the position of h.
func (x *HeadingIndex[H]) PositionOf(h H) (int, error) {
	pos, ok := x.positions[h]
	if !ok {
		return -1, NewUnknownHeadingError(x.axis, h)
	}
	return pos, nil
}

// SlotOf returns the storage slot of h.
func (x *HeadingIndex[H]) SlotOf(h H) (int, error) {
	pos, err := x.PositionOf(h)
	if err != nil {
		return -1, err
	}
	return x.slots[pos], nil
}

// SlotAt returns the storage slot of the heading at pos.
func (x *HeadingIndex[H]) SlotAt(pos int) int {
	return x.slots[pos]
}

// HeadingAt returns the heading at pos.
func (x *HeadingIndex[H]) HeadingAt(pos int) H {
	return x.headings[pos]
}

// Add registers h at the next position and returns that position.
func (x *HeadingIndex[H]) Add(h H) (int, error) {
	if x.Has(h) {
		return -1, NewDuplicateHeadingError(x.axis, h)
	}
	pos := len(x.headings)
	x.headings = append(x.headings, h)
	x.slots = append(x.slots, pos)
	x.positions[h] = pos
	return pos, nil
}

// Swap exchanges the headings at positions i and j.
func (x *HeadingIndex[H]) Swap(i, j int) {
	if i == j {
		return
	}
	x.headings[i], x.headings[j] = x.headings[j], x.headings[i]
	x.slots[i], x.slots[j] = x.slots[j], x.slots[i]
	x.positions[x.headings[i]] = i
	x.positions[x.headings[j]] = j
}

// Headings returns a copy of the headings in position order.
func (x *HeadingIndex[H]) Headings() []H {
	out := make([]H, len(x.headings))
	copy(out, x.headings)
	return out
}

// checkNew reports the first heading of hs that is already registered or repeated within hs.
func (x *HeadingIndex[H]) checkNew(hs []H) error {
	seen := make(map[H]struct{}, len(hs))
	for _, h := range hs {
		if _, dup := seen[h]; dup || x.Has(h) {
			return NewDuplicateHeadingError(x.axis, h)
		}
		seen[h] = struct{}{}
	}
	return nil
}
