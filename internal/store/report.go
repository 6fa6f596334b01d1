package store

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/inventory-tracker/internal/model"
)

// NoLowStockMessage is printed when no product is at or below the threshold.
const NoLowStockMessage = "No low-stock products"

// formatPrice renders the shortest decimal form of price, keeping one
// fractional digit for whole amounts: 0.99, 2.5, 15.0.
func formatPrice(price float64) string {
	d := decimal.NewFromFloat(price)
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(1)
	}
	return d.String()
}

func productLine(p model.Product) string {
	return fmt.Sprintf("Product: %s, Price: $%s, Stock: %d", p.Name, formatPrice(p.Price), p.Stock)
}

func lowStockLine(p model.Product) string {
	return fmt.Sprintf("LOW STOCK: %s - %d left", p.Name, p.Stock)
}

// ListProducts writes one line per product in list order.
func (s *Store) ListProducts(w io.Writer) error {
	for _, p := range s.items {
		if _, err := fmt.Fprintln(w, productLine(p)); err != nil {
			return err
		}
	}
	return nil
}

// LowStockProducts writes one line per product at or below threshold, or
// NoLowStockMessage when there are none, and returns the selection.
func (s *Store) LowStockProducts(w io.Writer, threshold int) ([]model.Product, error) {
	low := s.LowStock(threshold)
	if len(low) == 0 {
		_, err := fmt.Fprintln(w, NoLowStockMessage)
		return low, err
	}
	for _, p := range low {
		if _, err := fmt.Fprintln(w, lowStockLine(p)); err != nil {
			return low, err
		}
	}
	return low, nil
}
