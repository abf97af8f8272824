package service

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"eatery-pos/internal/domain"
)

// noDataLabel keeps the chart series non-empty when a month has no
// sales.
const noDataLabel = "No Data"

// ReportService derives the sales report from the order ledger. It
// only ever reads; recomputation happens on every request.
type ReportService struct {
	ledger OrderLister
	now    func() time.Time
}

func NewReportService(ledger OrderLister) *ReportService {
	return &ReportService{ledger: ledger, now: time.Now}
}

// FilterByMonth keeps orders whose local calendar year-month equals
// monthKey ("YYYY-MM"). An empty key means the current month; the
// effective key is returned so callers can reflect it back.
func (s *ReportService) FilterByMonth(orders []domain.Order, monthKey string) ([]domain.Order, string) {
	if monthKey == "" {
		monthKey = s.now().Format("2006-01")
	}

	matched := []domain.Order{}
	for _, order := range orders {
		if order.Date.In(time.Local).Format("2006-01") == monthKey {
			matched = append(matched, order)
		}
	}
	return matched, monthKey
}

// BucketByDay groups orders by local calendar date and sums totals
// per day, ascending. An empty set yields a single zero bucket so
// the chart always has a series to draw.
func (s *ReportService) BucketByDay(orders []domain.Order) []domain.SalesBucket {
	if len(orders) == 0 {
		return []domain.SalesBucket{{Day: noDataLabel, Total: 0}}
	}

	byDay := map[string][]domain.Order{}
	for _, order := range orders {
		day := order.Date.In(time.Local).Format("2006-01-02")
		byDay[day] = append(byDay[day], order)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	buckets := make([]domain.SalesBucket, 0, len(days))
	for _, day := range days {
		buckets = append(buckets, domain.SalesBucket{
			Day:   day,
			Total: domain.OrdersTotal(byDay[day]),
		})
	}
	return buckets
}

func (s *ReportService) MonthlyTotal(orders []domain.Order) float64 {
	return domain.OrdersTotal(orders)
}

// Table renders one row per order for the flat report view.
func (s *ReportService) Table(orders []domain.Order) []domain.SalesRow {
	rows := make([]domain.SalesRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, domain.SalesRow{
			Date:  order.Date.In(time.Local).Format("2006-01-02"),
			Items: summarizeItems(order.Items),
			Total: order.Total,
		})
	}
	return rows
}

// Monthly composes the full report for one month of the ledger.
func (s *ReportService) Monthly(monthKey string) domain.MonthlyReport {
	matched, effective := s.FilterByMonth(s.ledger.List(), monthKey)
	return domain.MonthlyReport{
		Month:   effective,
		Rows:    s.Table(matched),
		Buckets: s.BucketByDay(matched),
		Total:   s.MonthlyTotal(matched),
	}
}

func summarizeItems(items []domain.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Name+" ("+strconv.Itoa(item.Quantity)+")")
	}
	return strings.Join(parts, ", ")
}

var _ ReportServiceInterface = (*ReportService)(nil)
