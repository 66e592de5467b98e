package view

import (
	"strconv"

	"space/explorer/internal/domain"
	"space/explorer/internal/localization"
)

func CacheStats(stats *domain.CacheStats, tr *localization.Translator) Node {
	if stats == nil {
		return NoData(tr)
	}

	hitRate := tr.T("NotAvailable")
	if rate, ok := stats.HitRate(); ok {
		hitRate = strconv.FormatFloat(rate, 'f', 1, 64) + "%"
	}

	return Div(Class("stats"),
		stat(strconv.FormatInt(stats.Keys, 10), tr.T("CacheKeys")),
		stat(strconv.FormatInt(stats.Hits, 10), tr.T("CacheHits")),
		stat(strconv.FormatInt(stats.Misses, 10), tr.T("CacheMisses")),
		stat(hitRate, tr.T("CacheHitRate")),
	)
}
