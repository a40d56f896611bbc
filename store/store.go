// Package store persists palettes and per-group settings in a single JSON
// document on the configured filesystem.
package store

import (
	"sync"

	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/log"
	"github.com/ledpal/ledpal/palette"
	"github.com/ledpal/ledpal/version"
	"github.com/ledpal/ledpal/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
)

type document struct {
	// Version is the ledpal version that last wrote the document.
	Version  string              `json:"version"`
	Palettes *palette.Collection `json:"palettes"`
	Groups   map[string]Group    `json:"groups"`
}

// Store is the persistent key-value store. Every setter writes through to disk.
type Store struct {
	cacher *gache.Cache[*document]
}

// New returns a store backed by the document at path.
func New(path string) *Store {
	return &Store{
		cacher: gache.New[*document](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

var (
	defaultStore *Store
	defaultOnce  sync.Once
)

// Default returns the store at where.Store().
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = New(where.Store())
	})
	return defaultStore
}

func (s *Store) load() (*document, error) {
	cached, expired, err := s.cacher.Get()
	if err != nil {
		return nil, err
	}

	doc := &document{}
	if !expired && cached != nil {
		doc.Version = cached.Version
		doc.Palettes = cached.Palettes
		doc.Groups = cached.Groups
	}

	if newer, err := version.Compare(doc.Version, constant.Version); err == nil && newer > 0 {
		log.Warnf("store was written by ledpal %s, this is %s", doc.Version, constant.Version)
	}

	if doc.Palettes == nil {
		doc.Palettes = palette.NewCollection()
	} else {
		doc.Palettes = doc.Palettes.Clone()
	}
	doc.Groups = lo.Assign(doc.Groups)

	return doc, nil
}

func (s *Store) save(doc *document) error {
	doc.Version = constant.Version
	return s.cacher.Set(doc)
}

// Palettes returns a copy of the stored palettes in insertion order.
// Entries that fail validation, e.g. hand-edited ones with a single stop,
// are left in the document but not returned.
func (s *Store) Palettes() (*palette.Collection, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, key := range doc.Palettes.Keys() {
		p, _ := doc.Palettes.Get(key)
		if err := p.Validate(); err != nil {
			log.WithFields(logrus.Fields{"palette": key.String()}).Warnf("skipping stored palette: %s", err)
			doc.Palettes.Delete(key)
		}
	}
	return doc.Palettes, nil
}

// SetPalette stores p under key.
func (s *Store) SetPalette(key palette.Key, p palette.Palette) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Palettes.Set(key, p.Clone())
	return s.save(doc)
}

// RemovePalette deletes the palette under key. Groups that used it fall back
// to the first default palette.
func (s *Store) RemovePalette(key palette.Key) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Palettes.Delete(key)
	for name, g := range doc.Groups {
		if g.Palette == key {
			g.Palette = palette.Key(fallbackPalette)
			doc.Groups[name] = g
			log.Infof("group %q falls back to palette %q", name, fallbackPalette)
		}
	}

	return s.save(doc)
}
