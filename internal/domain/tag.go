package domain

import (
	"regexp"
	"slices"
	"strings"
)

// TagConstraints is reported when a tag name is rejected.
const TagConstraints = "Tags names should be alphanumeric"

var tagRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Tag is a user-defined label on an attraction, e.g. "nature" or "museum".
// Identity is the exact tag name.
type Tag struct {
	name string
}

// IsValidTagName reports whether raw is acceptable as a Tag name.
func IsValidTagName(raw string) bool {
	return tagRe.MatchString(raw)
}

// NewTag validates raw and wraps it.
func NewTag(raw string) (Tag, error) {
	if !IsValidTagName(raw) {
		return Tag{}, invalid(FieldTag, TagConstraints)
	}
	return Tag{name: raw}, nil
}

func (t Tag) String() string { return t.name }

// TagSet is an immutable set of tags, iterated in name order.
type TagSet struct {
	tags []Tag
}

// NewTagSet builds a set from tags, dropping duplicates.
func NewTagSet(tags ...Tag) TagSet {
	out := slices.Clone(tags)
	slices.SortFunc(out, func(a, b Tag) int { return strings.Compare(a.name, b.name) })
	return TagSet{tags: slices.Compact(out)}
}

// Tags returns the members in name order. The slice is a copy.
func (s TagSet) Tags() []Tag { return slices.Clone(s.tags) }

// Len returns the number of tags.
func (s TagSet) Len() int { return len(s.tags) }

// Has reports whether t is a member.
func (s TagSet) Has(t Tag) bool {
	_, ok := slices.BinarySearchFunc(s.tags, t, func(a, b Tag) int { return strings.Compare(a.name, b.name) })
	return ok
}

// Equal reports whether both sets hold the same tags.
func (s TagSet) Equal(other TagSet) bool {
	return slices.Equal(s.tags, other.tags)
}

// Names returns the tag names in order.
func (s TagSet) Names() []string {
	out := make([]string, len(s.tags))
	for i, t := range s.tags {
		out[i] = t.name
	}
	return out
}
