package chapters

import (
	"sort"
	"time"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
)

// Detect buckets visits by calendar month, finds each month's dominant city,
// and merges consecutive months sharing a dominant city into one chapter.
// A simple narrative heuristic: a chapter is "the stretch of life anchored
// in one city".
func Detect(visits []models.Visit) []models.Chapter {
	type monthInfo struct {
		key    string // YYYY-MM
		first  int64
		last   int64
		cities map[string]int
		count  int
	}

	byMonth := make(map[string]*monthInfo)
	for _, v := range visits {
		if v.City == "" {
			continue
		}
		key := time.Unix(v.Timestamp, 0).UTC().Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = &monthInfo{key: key, first: v.Timestamp, last: v.Timestamp, cities: make(map[string]int)}
			byMonth[key] = m
		}
		if v.Timestamp < m.first {
			m.first = v.Timestamp
		}
		if v.Timestamp > m.last {
			m.last = v.Timestamp
		}
		m.cities[v.City]++
		m.count++
	}

	months := make([]*monthInfo, 0, len(byMonth))
	for _, m := range byMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].key < months[j].key })

	var out []models.Chapter
	for _, m := range months {
		city := dominantCity(m.cities)
		if len(out) > 0 && out[len(out)-1].City == city {
			last := &out[len(out)-1]
			last.EndTimestamp = m.last
			last.Months++
			last.VisitCount += m.count
			continue
		}
		out = append(out, models.Chapter{
			City:           city,
			StartTimestamp: m.first,
			EndTimestamp:   m.last,
			Months:         1,
			VisitCount:     m.count,
		})
	}
	return out
}

func dominantCity(cities map[string]int) string {
	var top string
	var topCount int
	for city, count := range cities {
		if count > topCount || (count == topCount && city < top) {
			top = city
			topCount = count
		}
	}
	return top
}
