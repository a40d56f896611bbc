package palette

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/log"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
)

// Repository performs CRUD over the palettes of a Store and enforces the
// palette invariants on every mutation. It is not safe for concurrent use;
// callers run it from a single event loop.
type Repository struct {
	store Store
	now   func() time.Time
}

// NewRepository returns a repository backed by store.
func NewRepository(store Store) *Repository {
	return &Repository{store: store, now: time.Now}
}

// Seed stores the built-in palettes if the store holds none at all.
func (r *Repository) Seed() error {
	palettes, err := r.store.Palettes()
	if err != nil {
		return err
	}
	if palettes.Len() > 0 {
		return nil
	}

	defaults := Defaults()
	for _, k := range defaults.Keys() {
		p, _ := defaults.Get(k)
		if err := r.store.SetPalette(k, p); err != nil {
			return err
		}
	}

	log.Infof("seeded %d default palettes", defaults.Len())
	return nil
}

// Get returns a copy of the palette stored under key.
func (r *Repository) Get(key Key) (Palette, error) {
	palettes, err := r.store.Palettes()
	if err != nil {
		return Palette{}, err
	}

	p, ok := palettes.Get(key)
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return p.Clone(), nil
}

// List returns a copy of every palette in display order.
func (r *Repository) List() (*Collection, error) {
	palettes, err := r.store.Palettes()
	if err != nil {
		return nil, err
	}
	return palettes.Clone(), nil
}

// Put upserts p under key. Writes to a key holding a default palette are rejected.
func (r *Repository) Put(key Key, p Palette) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if _, err := r.editable(key); err != nil && !isNotFound(err) {
		return err
	}

	if err := r.store.SetPalette(key, p.Clone()); err != nil {
		return err
	}

	r.logger(key).Debug("palette stored")
	return nil
}

// Remove deletes the palette under key. Default palettes are never removed.
func (r *Repository) Remove(key Key) error {
	if _, err := r.editable(key); err != nil {
		return err
	}

	if err := r.store.RemovePalette(key); err != nil {
		return err
	}

	r.logger(key).Info("palette removed")
	return nil
}

// Duplicate stores a deep copy of the palette under key as a new, editable
// palette named "<name> (Copy)" and returns the new key.
func (r *Repository) Duplicate(key Key) (Key, error) {
	palettes, err := r.store.Palettes()
	if err != nil {
		return "", err
	}

	original, ok := palettes.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	copied := original.Clone()
	copied.Name = original.Name + constant.CopySuffix
	copied.Default = false

	newKey := r.freshKey(palettes)
	if err := r.store.SetPalette(newKey, copied); err != nil {
		return "", err
	}

	r.logger(key).WithField("copy", newKey).Info("palette duplicated")
	return newKey, nil
}

// InsertColorAfter inserts a copy of the stop at index immediately after it.
func (r *Repository) InsertColorAfter(key Key, index int) error {
	p, err := r.editable(key)
	if err != nil {
		return err
	}
	if err := checkIndex(p, index); err != nil {
		return err
	}

	colors := make([]hsv.Color, 0, len(p.Colors)+1)
	colors = append(colors, p.Colors[:index+1]...)
	colors = append(colors, p.Colors[index])
	colors = append(colors, p.Colors[index+1:]...)
	p.Colors = colors

	return r.write(key, p, "color inserted")
}

// RemoveColorAt removes the stop at index, refusing to go below MinColors.
func (r *Repository) RemoveColorAt(key Key, index int) error {
	p, err := r.editable(key)
	if err != nil {
		return err
	}
	if len(p.Colors) <= MinColors {
		return fmt.Errorf("%w: %q has %d", ErrMinimumColorCount, key, len(p.Colors))
	}
	if err := checkIndex(p, index); err != nil {
		return err
	}

	p.Colors = append(p.Colors[:index:index], p.Colors[index+1:]...)
	return r.write(key, p, "color removed")
}

// SetColorAt replaces the stop at index, as committed by a colour picker.
func (r *Repository) SetColorAt(key Key, index int, c hsv.Color) error {
	p, err := r.editable(key)
	if err != nil {
		return err
	}
	if err := checkIndex(p, index); err != nil {
		return err
	}

	p.Colors[index] = c.Clamp()
	return r.write(key, p, "color set")
}

// Rename changes the display name of an editable palette.
func (r *Repository) Rename(key Key, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	p, err := r.editable(key)
	if err != nil {
		return err
	}

	p.Name = name
	return r.write(key, p, "palette renamed")
}

// Find returns the keys of palettes whose names fuzzily match query, best match first.
func (r *Repository) Find(query string) ([]Key, error) {
	palettes, err := r.store.Palettes()
	if err != nil {
		return nil, err
	}

	keys := palettes.Keys()
	names := lo.Map(keys, func(k Key, _ int) string {
		p, _ := palettes.Get(k)
		return p.Name
	})

	ranks := fuzzy.RankFindFold(query, names)
	sort.Stable(ranks)

	return lo.Map(ranks, func(rank fuzzy.Rank, _ int) Key {
		return keys[rank.OriginalIndex]
	}), nil
}

// Resolve turns a user reference into a key: an exact key, an exact name
// (case-insensitive) or a single fuzzy name match, in that order.
func (r *Repository) Resolve(ref string) (Key, error) {
	palettes, err := r.store.Palettes()
	if err != nil {
		return "", err
	}

	if palettes.Has(Key(ref)) {
		return Key(ref), nil
	}

	byName := lo.Filter(palettes.Keys(), func(k Key, _ int) bool {
		p, _ := palettes.Get(k)
		return strings.EqualFold(p.Name, ref)
	})
	if len(byName) == 1 {
		return byName[0], nil
	}

	matches, err := r.Find(ref)
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d palettes", ErrAmbiguous, ref, len(matches))
	}
}

// editable returns the palette under key, or an error if it is missing or default.
func (r *Repository) editable(key Key) (Palette, error) {
	p, err := r.Get(key)
	if err != nil {
		return Palette{}, err
	}
	if p.Default {
		r.logger(key).Warn("rejected mutation of default palette")
		return Palette{}, fmt.Errorf("%w: %q", ErrCannotModifyDefault, p.Name)
	}
	return p, nil
}

func (r *Repository) write(key Key, p Palette, what string) error {
	if err := r.store.SetPalette(key, p); err != nil {
		return err
	}
	r.logger(key).WithField("colors", len(p.Colors)).Info(what)
	return nil
}

// freshKey derives a key from the current time in milliseconds, stepping
// forward until it collides with no existing key.
func (r *Repository) freshKey(palettes *Collection) Key {
	ms := r.now().UnixMilli()
	for {
		k := Key(strconv.FormatInt(ms, 10))
		if !palettes.Has(k) {
			return k
		}
		ms++
	}
}

func (r *Repository) logger(key Key) *logrus.Entry {
	return log.WithFields(logrus.Fields{"palette": key.String()})
}

func checkIndex(p Palette, index int) error {
	if index < 0 || index >= len(p.Colors) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(p.Colors))
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
