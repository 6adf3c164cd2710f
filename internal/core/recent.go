package core

import "time"

// MostRecent tracks the single most recent item offered to it. Replacement
// requires a strictly later timestamp, so among items with equal timestamps
// the first one offered wins. Both the pull request scan and the commit
// fallback scan reduce through this tracker.
type MostRecent[T any] struct {
	item T
	at   time.Time
	set  bool
}

// Offer records the item if its timestamp is strictly later than the current
// best (or if nothing has been recorded yet).
func (m *MostRecent[T]) Offer(item T, at time.Time) {
	if m.set && !at.After(m.at) {
		return
	}
	m.item = item
	m.at = at
	m.set = true
}

// Best returns the most recent item, its timestamp, and whether anything was
// recorded at all.
func (m *MostRecent[T]) Best() (T, time.Time, bool) {
	return m.item, m.at, m.set
}
