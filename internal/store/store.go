// Package store holds the inventory and keeps it mirrored to a Persister.
package store

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/fairyhunter13/inventory-tracker/internal/model"
)

// DefaultLowStockThreshold is the stock level at or below which a product
// is reported as low.
const DefaultLowStockThreshold = 5

// Store is an ordered, in-memory product list. Every mutation is followed
// by a full save through the Persister; the in-memory list stays
// authoritative when a save fails.
type Store struct {
	items  []model.Product
	p      Persister
	logger *slog.Logger
}

// New creates an empty Store backed by p. A nil logger uses slog.Default().
func New(p Persister, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{p: p, logger: logger}
}

// Load replaces the in-memory list with the persisted one. A missing or
// unreadable file leaves the store empty; no error is surfaced.
func (s *Store) Load() {
	products, err := s.p.Load()
	if err != nil {
		s.items = nil
		switch {
		case errors.Is(err, ErrNotFound):
			s.logger.Info("inventory_not_found_starting_fresh", "path", s.p.Path())
		case errors.Is(err, ErrCorrupt):
			s.logger.Warn("inventory_corrupt_starting_fresh", "path", s.p.Path(), "error", err)
		default:
			s.logger.Warn("inventory_unreadable_starting_fresh", "path", s.p.Path(), "error", err)
		}
		return
	}
	s.items = products
	s.logger.Info("inventory_loaded", "count", len(s.items), "path", s.p.Path())
}

// Save writes the full list. Failures are logged and returned.
func (s *Store) Save() error {
	if err := s.p.Save(s.items); err != nil {
		s.logger.Error("inventory_save_failed", "path", s.p.Path(), "error", err)
		return err
	}
	s.logger.Info("inventory_saved", "count", len(s.items), "path", s.p.Path())
	return nil
}

// AddProduct appends a product with a fresh id and saves. Inputs are not
// validated.
func (s *Store) AddProduct(name string, price float64, stock int) model.Product {
	p := model.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: price,
		Stock: stock,
	}
	s.items = append(s.items, p)
	_ = s.Save()
	return p
}

// UpdateStock sets the stock of the product with the given id and saves.
// An unknown id is a silent no-op and reports false.
func (s *Store) UpdateStock(id uuid.UUID, newStock int) bool {
	i := slices.IndexFunc(s.items, func(p model.Product) bool { return p.ID == id })
	if i < 0 {
		return false
	}
	s.items[i].Stock = newStock
	_ = s.Save()
	return true
}

// Products returns a copy of the list in insertion order.
func (s *Store) Products() []model.Product {
	return slices.Clone(s.items)
}

// Len returns the number of products.
func (s *Store) Len() int { return len(s.items) }

// LowStock returns the products whose stock is at or below threshold, in
// list order.
func (s *Store) LowStock(threshold int) []model.Product {
	var out []model.Product
	for _, p := range s.items {
		if p.Stock <= threshold {
			out = append(out, p)
		}
	}
	return out
}
