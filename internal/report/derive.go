// Package report computes presentation-ready views from the cached product
// list: search, archive filtering, sorting and aggregate metrics. Pure
// functions, no I/O; recomputed whenever the cache or criteria change.
package report

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/iudanet/stockpile/internal/models"
)

// Filter partitions the catalog by the archived flag
type Filter string

const (
	FilterAll      Filter = "all"
	FilterActive   Filter = "active"
	FilterArchived Filter = "archived"
)

// Sort selects the ordering of the derived list
type Sort string

const (
	// SortName локале-зависимая сортировка по имени, без учета
	// регистра и диакритики
	SortName Sort = "name"
	// SortPriceAsc по возрастанию цены
	SortPriceAsc Sort = "price-asc"
	// SortPriceDesc по убыванию цены
	SortPriceDesc Sort = "price-desc"
	// SortRecent по времени изменения (updated_at, иначе created_at), новые сверху
	SortRecent Sort = "recent"
)

// DefaultLowStockThreshold остаток, ниже которого товар требует внимания
const DefaultLowStockThreshold = 5

// Options are the derivation criteria
type Options struct {
	Term              string
	Filter            Filter
	Sort              Sort
	LowStockThreshold int64
}

// Metrics are the aggregates computed over the derived list
type Metrics struct {
	TotalProducts  int
	TotalUnits     int64
	LowStock       int
	InventoryValue float64
	AvgPrice       float64
}

// View is the presentation-ready result
type View struct {
	Items   []*models.Product
	Metrics Metrics
}

// Derive filters, sorts and aggregates the product list in one pass.
// The input slice is not modified.
func Derive(products []*models.Product, opts Options) View {
	term := strings.ToLower(strings.TrimSpace(opts.Term))

	items := make([]*models.Product, 0, len(products))
	metrics := Metrics{}
	var priceSum float64

	for _, p := range products {
		if !matchesFilter(p, opts.Filter) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}

		items = append(items, p)

		// Метрики считаем в том же проходе
		quantity := p.Quantity
		if quantity < 0 {
			quantity = 0
		}
		price := safePrice(p.Price)

		metrics.TotalUnits += quantity
		metrics.InventoryValue += price * float64(quantity)
		priceSum += price
		if quantity < opts.LowStockThreshold {
			metrics.LowStock++
		}
	}

	metrics.TotalProducts = len(items)
	if len(items) > 0 {
		metrics.AvgPrice = priceSum / float64(len(items))
	}

	sortItems(items, opts.Sort)

	return View{Items: items, Metrics: metrics}
}

// matchesFilter reports whether the product passes the archive criterion
func matchesFilter(p *models.Product, filter Filter) bool {
	switch filter {
	case FilterActive:
		return !p.Archived
	case FilterArchived:
		return p.Archived
	default:
		return true
	}
}

// sortItems orders the derived list in place
func sortItems(items []*models.Product, key Sort) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return safePrice(items[i].Price) < safePrice(items[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return safePrice(items[i].Price) > safePrice(items[j].Price)
		})
	case SortRecent:
		sort.SliceStable(items, func(i, j int) bool {
			return recency(items[i]) > recency(items[j])
		})
	default:
		// Базовая чувствительность: "Água" и "água" стоят рядом
		collator := collate.New(language.BrazilianPortuguese, collate.Loose)
		sort.SliceStable(items, func(i, j int) bool {
			return collator.CompareString(items[i].Name, items[j].Name) < 0
		})
	}
}

// recency returns the sort key for SortRecent: updated_at with
// created_at as fallback, missing treated as 0
func recency(p *models.Product) int64 {
	if p.UpdatedAt > 0 {
		return p.UpdatedAt
	}
	if p.CreatedAt > 0 {
		return p.CreatedAt
	}
	return 0
}

// safePrice treats non-finite or negative garbage as 0
func safePrice(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
