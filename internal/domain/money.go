package domain

import "math"

// Round2 rounds to two decimal places for display and storage.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func paise(v float64) int64 {
	return int64(math.Round(v * 100))
}

// LineSubtotal multiplies in integer paise so small-denomination
// prices cannot accumulate float drift across quantities.
func LineSubtotal(price float64, quantity int) float64 {
	return float64(paise(price)*int64(quantity)) / 100
}

// CartTotal sums line subtotals in integer paise.
func CartTotal(lines []CartLine) float64 {
	var total int64
	for _, line := range lines {
		total += paise(line.Price) * int64(line.Quantity)
	}
	return float64(total) / 100
}

// OrdersTotal sums order totals in integer paise.
func OrdersTotal(orders []Order) float64 {
	var total int64
	for _, order := range orders {
		total += paise(order.Total)
	}
	return float64(total) / 100
}
