package domain

import "time"

type MenuItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// CartLine snapshots name and price at add time. Later menu edits do
// not change lines already in the cart.
type CartLine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	Date  time.Time   `json:"date"`
	Items []OrderItem `json:"items"`
	Total float64     `json:"total"`
}

// SalesBucket is one calendar day of summed order totals. Derived
// from the ledger on demand, never persisted.
type SalesBucket struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
}

type SalesRow struct {
	Date  string  `json:"date"`
	Items string  `json:"items"`
	Total float64 `json:"total"`
}

type MonthlyReport struct {
	Month   string        `json:"month"`
	Rows    []SalesRow    `json:"rows"`
	Buckets []SalesBucket `json:"buckets"`
	Total   float64       `json:"total"`
}

// DefaultMenu seeds an empty installation on first start.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{ID: 1, Name: "Idly", Price: 20},
		{ID: 2, Name: "Dosa", Price: 30},
		{ID: 3, Name: "Poori", Price: 25},
		{ID: 4, Name: "Vada", Price: 15},
		{ID: 5, Name: "Tea", Price: 10},
		{ID: 6, Name: "Coffee", Price: 15},
		{ID: 7, Name: "Milk", Price: 12},
		{ID: 8, Name: "Boost", Price: 20},
	}
}
