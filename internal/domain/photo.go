// Package domain contains the core data types for the photo tagger: photos,
// the tag normalizer, export reports, and the sentinel errors shared by every
// other internal package (repo, service, handler).
package domain

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// photoExtensions lists the lower-cased file extensions recognised as photos
// during a folder import.
var photoExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".tif"}

// IsPhotoFile reports whether name carries one of the recognised photo
// extensions. The comparison is case-insensitive, so "C.PNG" qualifies.
func IsPhotoFile(name string) bool {
	return slices.Contains(photoExtensions, strings.ToLower(filepath.Ext(name)))
}

// Photo is a single image file in the loaded collection.
// FullPath is fixed at import; Tags is the only mutable part and always holds
// unique canonical tags (see NormalizeTag) in ascending order.
type Photo struct {
	ID       uuid.UUID
	FileName string
	FullPath string
	Tags     []string
}

// NewPhoto builds an untagged Photo for the file at fullPath.
// FileName is derived from the final path segment.
func NewPhoto(fullPath string) *Photo {
	return &Photo{
		ID:       uuid.New(),
		FileName: filepath.Base(fullPath),
		FullPath: fullPath,
		Tags:     []string{},
	}
}

// AddTag normalizes raw and inserts it into the photo's tag set.
// Returns false without changing anything when the normalized tag is empty
// or already present.
func (p *Photo) AddTag(raw string) bool {
	tag := NormalizeTag(raw)
	if tag == "" {
		return false
	}
	i, found := slices.BinarySearch(p.Tags, tag)
	if found {
		return false
	}
	p.Tags = slices.Insert(p.Tags, i, tag)
	return true
}

// RemoveTag removes tag by exact match. The tag must already be in canonical
// form. Returns true only when the tag was present.
func (p *Photo) RemoveTag(tag string) bool {
	i, found := slices.BinarySearch(p.Tags, tag)
	if !found {
		return false
	}
	p.Tags = slices.Delete(p.Tags, i, i+1)
	return true
}

// HasTag reports whether the photo carries tag (exact match).
func (p *Photo) HasTag(tag string) bool {
	_, found := slices.BinarySearch(p.Tags, tag)
	return found
}

// Clone returns a deep copy safe to hand to read-only callers.
func (p *Photo) Clone() Photo {
	c := *p
	c.Tags = slices.Clone(p.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c
}
