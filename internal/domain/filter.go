package domain

import "time"

// ListFilter narrows a category listing.
//
// Ordering contract: id DESC by default; when either date bound is set the
// ordering becomes data DESC, id DESC.
type ListFilter struct {
	Search    string     // case-insensitive substring over SearchColumns
	StartDate *time.Time // inclusive lower bound on data
	EndDate   *time.Time // inclusive upper bound on data
	Limit     uint64     // 0 means the storage default
}

// HasDateBound reports whether a date-range bound is present.
func (f ListFilter) HasDateBound() bool {
	return f.StartDate != nil || f.EndDate != nil
}

// EffectiveLimit applies the storage default cap.
func (f ListFilter) EffectiveLimit() uint64 {
	if f.Limit == 0 {
		return DefaultListLimit
	}
	return f.Limit
}

// DefaultListLimit bounds unfiltered listings, matching the historical cap.
const DefaultListLimit = 100
