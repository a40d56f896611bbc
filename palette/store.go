package palette

// Store is the persistent palette store the Repository delegates to.
// Implementations write through immediately; the Repository adds no buffering.
type Store interface {
	Palettes() (*Collection, error)
	SetPalette(key Key, p Palette) error
	RemovePalette(key Key) error
}

// MemoryStore is a volatile Store. It copies palettes on the way in and out.
type MemoryStore struct {
	palettes *Collection
}

// NewMemoryStore returns a store holding copies of the given collection, if any.
func NewMemoryStore(initial *Collection) *MemoryStore {
	if initial == nil {
		initial = NewCollection()
	}
	return &MemoryStore{palettes: initial.Clone()}
}

func (m *MemoryStore) Palettes() (*Collection, error) {
	return m.palettes.Clone(), nil
}

func (m *MemoryStore) SetPalette(key Key, p Palette) error {
	m.palettes.Set(key, p.Clone())
	return nil
}

func (m *MemoryStore) RemovePalette(key Key) error {
	m.palettes.Delete(key)
	return nil
}
