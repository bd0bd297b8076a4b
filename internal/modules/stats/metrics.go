package stats

import (
	"sort"
	"time"
)

// topProductLimit caps the product ranking shown on the statistics page.
const topProductLimit = 5

// BuildMetrics derives the statistics-page figures from a vendor's sales.
// periodDays limits the window counting back from now; zero or negative
// means no window. Period buckets come back in chronological order.
func BuildMetrics(sales []Sale, now time.Time, periodDays int) Metrics {
	if periodDays > 0 {
		cutoff := now.AddDate(0, 0, -periodDays)
		filtered := make([]Sale, 0, len(sales))
		for _, s := range sales {
			if !s.PurchaseDate.Before(cutoff) {
				filtered = append(filtered, s)
			}
		}
		sales = filtered
	}

	m := Metrics{
		ByStatus: map[string]int{},
	}

	months := map[string]*PeriodTotal{}
	days := map[string]*PeriodTotal{}
	products := map[string]*ProductCount{}

	for _, s := range sales {
		m.TotalRevenue += s.Total
		m.SaleCount++
		m.ByStatus[s.OrderStatus]++

		addPeriod(months, s.PurchaseDate.Format("2006-01"), s.Total)
		addPeriod(days, s.PurchaseDate.Format("2006-01-02"), s.Total)

		for _, item := range s.Items {
			qty := item.Quantity
			if qty <= 0 {
				qty = 1
			}
			m.ItemsSold += qty

			name := item.Name
			if name == "" {
				name = item.ProductID
			}
			if name == "" {
				continue
			}
			pc, ok := products[name]
			if !ok {
				pc = &ProductCount{Name: name}
				products[name] = pc
			}
			pc.Quantity += qty
			pc.Revenue += item.TotalPrice
		}
	}

	m.ByMonth = sortedPeriods(months)
	m.ByDay = sortedPeriods(days)

	for _, pc := range products {
		m.TopProducts = append(m.TopProducts, *pc)
	}
	sort.Slice(m.TopProducts, func(i, j int) bool {
		if m.TopProducts[i].Quantity != m.TopProducts[j].Quantity {
			return m.TopProducts[i].Quantity > m.TopProducts[j].Quantity
		}
		return m.TopProducts[i].Name < m.TopProducts[j].Name
	})
	if len(m.TopProducts) > topProductLimit {
		m.TopProducts = m.TopProducts[:topProductLimit]
	}

	return m
}

func addPeriod(buckets map[string]*PeriodTotal, key string, total float64) {
	b, ok := buckets[key]
	if !ok {
		b = &PeriodTotal{Period: key}
		buckets[key] = b
	}
	b.Total += total
	b.Count++
}

func sortedPeriods(buckets map[string]*PeriodTotal) []PeriodTotal {
	out := make([]PeriodTotal, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}
