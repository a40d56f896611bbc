package palette

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Collection maps keys to palettes, iterating in insertion order.
// The zero value is not usable; call NewCollection.
type Collection struct {
	m *orderedmap.OrderedMap[Key, Palette]
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{m: orderedmap.New[Key, Palette]()}
}

// Get returns the palette stored under k.
func (c *Collection) Get(k Key) (Palette, bool) {
	return c.m.Get(k)
}

// Has reports whether k is present.
func (c *Collection) Has(k Key) bool {
	_, ok := c.m.Get(k)
	return ok
}

// Set stores p under k. A new key is appended; an existing key keeps its position.
func (c *Collection) Set(k Key, p Palette) {
	c.m.Set(k, p)
}

// Delete removes k and reports whether it was present.
func (c *Collection) Delete(k Key) bool {
	_, ok := c.m.Delete(k)
	return ok
}

// Len returns the number of palettes.
func (c *Collection) Len() int {
	return c.m.Len()
}

// Keys returns the keys in display order.
func (c *Collection) Keys() []Key {
	keys := make([]Key, 0, c.m.Len())
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Clone returns a deep copy of the collection.
func (c *Collection) Clone() *Collection {
	out := NewCollection()
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value.Clone())
	}
	return out
}

// MarshalJSON encodes the collection as a JSON object, preserving order.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return c.m.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, preserving the order of its members.
func (c *Collection) UnmarshalJSON(data []byte) error {
	c.m = orderedmap.New[Key, Palette]()
	return c.m.UnmarshalJSON(data)
}
