// Package model defines domain types used by the inventory tracker.
package model

import "github.com/google/uuid"

// Product is a sellable item held in the inventory.
type Product struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
	Stock int       `json:"stock"`
}
