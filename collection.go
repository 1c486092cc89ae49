package glib

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Member is a drawable, updatable element owned by a Collection.
type Member interface {
	Update() error
	Draw(b *Batch)
}

// DeltaUpdater is implemented by members whose update consumes frame timing.
// Collection.UpdateDelta passes elapsed time only to these members; everyone
// else gets the time-less Update.
type DeltaUpdater interface {
	UpdateDelta(dt time.Duration) error
}

// ownerSetter is satisfied by members embedding Attachment.
type ownerSetter interface {
	SetOwner(c *Collection)
}

// Collection owns an ordered list of members and fans out per-frame update
// and draw calls. Insertion order is update and draw order. A member may
// remove itself mid-pass via RemoveSelf without any member being skipped or
// visited twice.
//
// Collection is single-threaded: all mutation happens on the frame loop.
type Collection struct {
	members []Member
	cursor  int // index of the member currently being visited; -1 when idle
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{cursor: -1}
}

// Add appends m and assigns the owner back-reference when m embeds
// Attachment. Panics if m is nil.
func (c *Collection) Add(m Member) {
	if m == nil {
		panic("glib: cannot add nil member")
	}
	if o, ok := m.(ownerSetter); ok {
		o.SetOwner(c)
	}
	c.members = append(c.members, m)
	if debugEnabled {
		debugCheckCollection(c)
	}
}

// Remove deletes m by identity and reports whether it was present. Not safe
// while an update pass is visiting members; use RemoveSelf from inside a
// member's own Update.
func (c *Collection) Remove(m Member) bool {
	return c.removeAt(c.indexOf(m))
}

// RemoveSelf deletes m by identity, adjusting the in-progress iteration
// cursor so the current pass neither skips nor revisits a member. Intended
// to be called by m from inside its own Update. Reports whether m was
// present.
func (c *Collection) RemoveSelf(m Member) bool {
	i := c.indexOf(m)
	if i < 0 {
		return false
	}
	if c.cursor >= 0 && i <= c.cursor {
		c.cursor--
	}
	return c.removeAt(i)
}

// At returns the member at index i, or nil when i is out of range.
func (c *Collection) At(i int) Member {
	if i < 0 || i >= len(c.members) {
		return nil
	}
	return c.members[i]
}

// Len returns the number of members.
func (c *Collection) Len() int {
	return len(c.members)
}

// Update updates every member in insertion order without time information.
// Stops at and returns the first member error.
func (c *Collection) Update() error {
	c.cursor = 0
	defer func() { c.cursor = -1 }()
	for ; c.cursor < len(c.members); c.cursor++ {
		if err := c.members[c.cursor].Update(); err != nil {
			return err
		}
	}
	return nil
}

// UpdateDelta updates every member in insertion order, passing dt to members
// implementing DeltaUpdater and calling the time-less Update on the rest.
// Stops at and returns the first member error.
func (c *Collection) UpdateDelta(dt time.Duration) error {
	c.cursor = 0
	defer func() { c.cursor = -1 }()
	for ; c.cursor < len(c.members); c.cursor++ {
		m := c.members[c.cursor]
		var err error
		if d, ok := m.(DeltaUpdater); ok {
			err = d.UpdateDelta(dt)
		} else {
			err = m.Update()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Draw opens the batch on target, draws every member in insertion order, and
// closes the batch.
func (c *Collection) Draw(b *Batch, target *ebiten.Image) {
	b.Begin(target)
	c.DrawUnbatched(b)
	b.End()
}

// DrawUnbatched draws every member into an already-open batch, for
// composition into a larger draw.
func (c *Collection) DrawUnbatched(b *Batch) {
	for _, m := range c.members {
		m.Draw(b)
	}
}

// indexOf returns the index of m by identity, or -1.
func (c *Collection) indexOf(m Member) int {
	for i, have := range c.members {
		if have == m {
			return i
		}
	}
	return -1
}

// removeAt removes the member at index i using copy+nil to avoid retaining a
// dangling reference in the backing array. Returns false when i is -1.
func (c *Collection) removeAt(i int) bool {
	if i < 0 {
		return false
	}
	m := c.members[i]
	copy(c.members[i:], c.members[i+1:])
	c.members[len(c.members)-1] = nil
	c.members = c.members[:len(c.members)-1]
	if o, ok := m.(ownerSetter); ok {
		o.SetOwner(nil)
	}
	return true
}
