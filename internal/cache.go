package internal

// HistoryCache holds the most recent aggregate of the full record set. The
// rows are replaced wholesale on every refresh, so readers never observe a
// partially updated aggregate.
type HistoryCache struct {
	store RecordStore
	rows  []HistoryRow
}

// NewHistoryCache creates an empty cache backed by store.
func NewHistoryCache(store RecordStore) *HistoryCache {
	return &HistoryCache{store: store}
}

// Refresh recomputes the cached rows from the full record set. A store read
// failure is logged and degrades to an empty history; stale rows are never
// kept, since they could be missing the just-recorded session.
func (c *HistoryCache) Refresh() {
	records, err := c.store.QueryAll()
	if err != nil {
		LogWarn("Failed to read records, showing empty history: %v", err)
		c.rows = nil
		return
	}
	c.rows = Aggregate(records)
}

// Rows returns a copy of the cached history rows, so callers cannot mutate
// the cache through the returned slice.
func (c *HistoryCache) Rows() []HistoryRow {
	out := make([]HistoryRow, len(c.rows))
	copy(out, c.rows)
	return out
}
