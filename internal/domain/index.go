package domain

// Index addresses an element of a displayed list. Commands speak 1-based
// indexes; slices are 0-based. Index holds the 0-based form and converts.
type Index struct {
	zeroBased int
}

// FromOneBased converts a 1-based position. n must be at least 1.
func FromOneBased(n int) Index { return Index{zeroBased: n - 1} }

// FromZeroBased converts a 0-based position. n must not be negative.
func FromZeroBased(n int) Index { return Index{zeroBased: n} }

// ZeroBased returns the slice offset.
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the position as shown to the user.
func (i Index) OneBased() int { return i.zeroBased + 1 }

// In reports whether i addresses an element of a sequence of length n.
func (i Index) In(n int) bool { return i.zeroBased >= 0 && i.zeroBased < n }
