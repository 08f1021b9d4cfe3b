package analytics

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"shortlink/internal/domain"
)

const summaryListSize = 5

func summarize(all []domain.Analytics, now time.Time, loc *time.Location) *domain.Summary {
	today := now.In(loc).Format(dayLayout)

	s := &domain.Summary{
		TotalURLs:   int64(len(all)),
		TopURLs:     []domain.Analytics{},
		RecentURLs:  []domain.Analytics{},
		LastUpdated: now,
	}

	for _, a := range all {
		s.TotalClicks += a.ClickCount
		if a.CreatedAt.In(loc).Format(dayLayout) == today {
			s.TodayURLs++
		}
		if a.Day == today {
			s.TodayClicks += a.DayClicks
		}
	}

	top := slices.Clone(all)
	slices.SortFunc(top, func(a, b domain.Analytics) int {
		return cmp.Or(
			cmp.Compare(b.ClickCount, a.ClickCount),
			a.CreatedAt.Compare(b.CreatedAt),
			strings.Compare(a.ShortCode, b.ShortCode),
		)
	})
	s.TopURLs = append(s.TopURLs, top[:min(summaryListSize, len(top))]...)

	recent := slices.Clone(all)
	slices.SortFunc(recent, func(a, b domain.Analytics) int {
		return cmp.Or(
			b.CreatedAt.Compare(a.CreatedAt),
			strings.Compare(a.ShortCode, b.ShortCode),
		)
	})
	s.RecentURLs = append(s.RecentURLs, recent[:min(summaryListSize, len(recent))]...)

	return s
}
