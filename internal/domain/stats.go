package domain

// CacheStats reports the upstream service cache counters.
type CacheStats struct {
	Keys   int64 `json:"keys"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// HitRate returns hits/(hits+misses) as a percentage. It is undefined when
// nothing has been looked up yet.
func (s CacheStats) HitRate() (float64, bool) {
	total := s.Hits + s.Misses
	if total <= 0 {
		return 0, false
	}
	return float64(s.Hits) / float64(total) * 100, true
}
