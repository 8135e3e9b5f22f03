// Package service contains the business logic for the photo tagger.
// Services validate inputs, enforce the tag invariants, and orchestrate repo calls.
// No filesystem calls live here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/pkordes/photo-tagger/internal/domain"
	"github.com/pkordes/photo-tagger/internal/repo"
)

// Collection owns the loaded photos, the criteria vocabulary, the derived
// unique-tag index and the selection cursor.
//
// uniqueTags always contains every tag carried by any photo. After any
// operation that can shrink that footprint it is rebuilt from scratch, so it
// is then exactly the union. criteria is an independent set: a criterion may
// be carried by no photo.
//
// Collection is not safe for concurrent use; callers serialize access.
type Collection struct {
	library repo.LibraryRepo
	log     *slog.Logger

	photos     []*domain.Photo
	criteria   map[string]struct{}
	uniqueTags map[string]struct{}
	nav        Navigator
}

// NewCollection constructs an empty Collection that imports through library.
// A nil logger falls back to slog.Default().
func NewCollection(library repo.LibraryRepo, log *slog.Logger) *Collection {
	if log == nil {
		log = slog.Default()
	}
	c := &Collection{library: library, log: log}
	c.reset()
	return c
}

func (c *Collection) reset() {
	c.photos = nil
	c.criteria = map[string]struct{}{}
	c.uniqueTags = map[string]struct{}{}
	c.nav.Reset(0)
}

// Import replaces the whole collection with the photos found directly in dir.
// Photos, criteria, the unique-tag index and the cursor are all reset first,
// so a failed import leaves an empty collection behind.
//
// Returns the number of photos found. Zero is not an error. A folder that
// cannot be read yields an error wrapping domain.ErrStorage.
func (c *Collection) Import(ctx context.Context, dir string) (int, error) {
	c.reset()

	if strings.TrimSpace(dir) == "" {
		return 0, fmt.Errorf("service.Collection.Import: %w: folder path is required", domain.ErrValidation)
	}

	files, err := c.library.ListFiles(ctx, dir)
	if err != nil {
		return 0, fmt.Errorf("service.Collection.Import: %w: %w", domain.ErrStorage, err)
	}

	photos := make([]*domain.Photo, 0, len(files))
	for _, f := range files {
		if domain.IsPhotoFile(f.Name) {
			photos = append(photos, domain.NewPhoto(f.Path))
		}
	}
	c.photos = photos
	c.nav.Reset(len(photos))

	c.log.InfoContext(ctx, "folder imported",
		"dir", dir,
		"entries", len(files),
		"photos", len(photos),
	)
	return len(photos), nil
}

// AddCriterion normalizes raw and registers it as an available tag.
// Returns false for a blank input or a criterion that already exists.
func (c *Collection) AddCriterion(raw string) bool {
	tag := domain.NormalizeTag(raw)
	if tag == "" {
		return false
	}
	if _, ok := c.criteria[tag]; ok {
		return false
	}
	c.criteria[tag] = struct{}{}
	return true
}

// RemoveCriterion deletes a criterion and cascades: the tag is stripped from
// every photo and from the unique-tag index in the same call. Returns the
// number of photos that lost the tag. Removing an unknown criterion still
// strips any photo carrying the tag.
//
// The cascade is irreversible; asking the user for confirmation is the
// caller's job.
func (c *Collection) RemoveCriterion(raw string) int {
	tag := domain.NormalizeTag(raw)
	if tag == "" {
		return 0
	}

	delete(c.criteria, tag)
	affected := 0
	for _, p := range c.photos {
		if p.RemoveTag(tag) {
			affected++
		}
	}
	delete(c.uniqueTags, tag)

	c.log.Info("criterion removed", "tag", tag, "photos_affected", affected)
	return affected
}

// HasCriterion reports whether tag, once normalized, is a registered criterion.
func (c *Collection) HasCriterion(tag string) bool {
	_, ok := c.criteria[domain.NormalizeTag(tag)]
	return ok
}

// Criteria returns the registered criteria in ascending order.
func (c *Collection) Criteria() []string {
	return sortedKeys(c.criteria)
}

// ApplyTag adds tag to the photo at index. Returns false when the index is
// out of range, the tag is blank, or the photo already carries it.
func (c *Collection) ApplyTag(index int, tag string) bool {
	p, ok := c.at(index)
	if !ok || !p.AddTag(tag) {
		return false
	}
	c.uniqueTags[domain.NormalizeTag(tag)] = struct{}{}
	return true
}

// RemoveTag removes tag (exact canonical match) from the photo at index and
// rebuilds the unique-tag index. Returns false when nothing was removed.
func (c *Collection) RemoveTag(index int, tag string) bool {
	p, ok := c.at(index)
	if !ok || !p.RemoveTag(tag) {
		return false
	}
	c.RecalculateUniqueTags()
	return true
}

// RecalculateUniqueTags rebuilds the unique-tag index as the union of every
// photo's tags.
func (c *Collection) RecalculateUniqueTags() {
	unique := make(map[string]struct{}, len(c.uniqueTags))
	for _, p := range c.photos {
		for _, t := range p.Tags {
			unique[t] = struct{}{}
		}
	}
	c.uniqueTags = unique
}

// UniqueTags returns every tag carried by at least one photo, ascending.
func (c *Collection) UniqueTags() []string {
	return sortedKeys(c.uniqueTags)
}

// Count returns the number of photos in the collection.
func (c *Collection) Count() int {
	return len(c.photos)
}

// Photo returns a snapshot of the photo at index.
func (c *Collection) Photo(index int) (domain.Photo, bool) {
	p, ok := c.at(index)
	if !ok {
		return domain.Photo{}, false
	}
	return p.Clone(), true
}

// Photos returns snapshots of every photo in collection order.
func (c *Collection) Photos() []domain.Photo {
	out := make([]domain.Photo, len(c.photos))
	for i, p := range c.photos {
		out[i] = p.Clone()
	}
	return out
}

// Current returns the photo under the cursor; false when the collection is empty.
func (c *Collection) Current() (domain.Photo, bool) {
	return c.Photo(c.nav.Index())
}

// CurrentIndex returns the cursor position.
func (c *Collection) CurrentIndex() int {
	return c.nav.Index()
}

// Position returns the 1-based "current/total" status string.
func (c *Collection) Position() string {
	return c.nav.Position()
}

// Navigate moves the cursor one photo in direction d.
// moved is false at either end of the collection; that is not an error.
func (c *Collection) Navigate(d domain.Direction) (moved bool, err error) {
	switch d {
	case domain.DirectionPrevious:
		return c.nav.Previous(), nil
	case domain.DirectionNext:
		return c.nav.Next(), nil
	}
	return false, fmt.Errorf("service.Collection.Navigate: %w: unknown direction %q", domain.ErrValidation, d)
}

func (c *Collection) at(index int) (*domain.Photo, bool) {
	if index < 0 || index >= len(c.photos) {
		return nil, false
	}
	return c.photos[index], true
}

// sortedKeys returns the keys of set in ascending order, never nil.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
