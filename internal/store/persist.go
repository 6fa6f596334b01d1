package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/fairyhunter13/inventory-tracker/internal/model"
)

var (
	// ErrNotFound is returned by Load when nothing has been persisted yet.
	ErrNotFound = errors.New("inventory file not found")
	// ErrCorrupt is returned by Load when the persisted data cannot be decoded.
	ErrCorrupt = errors.New("inventory file is corrupt")
)

// Persister loads and saves the full product list.
type Persister interface {
	// Load returns the persisted list, ErrNotFound or ErrCorrupt (wrapped).
	Load() ([]model.Product, error)

	// Save replaces the persisted list with products.
	Save(products []model.Product) error

	// Path describes where the list is kept.
	Path() string
}

// JSONFile keeps the list as a pretty-printed JSON array in a single file.
type JSONFile struct {
	path string
}

// NewJSONFile returns a persister for the file at path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the file path used by this persister.
func (f *JSONFile) Path() string { return f.path }

// Load reads and decodes the file. A JSON null decodes to an empty list.
func (f *JSONFile) Load() ([]model.Product, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, f.path)
		}
		return nil, err
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, f.path, err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// Save overwrites the file in full. The data is written to a temp file
// first and renamed into place.
func (f *JSONFile) Save(products []model.Product) error {
	if products == nil {
		products = []model.Product{}
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Memory is an in-memory Persister that never writes to disk.
type Memory struct {
	products []model.Product
	saved    bool
	saves    int

	// FailSave makes every Save return an error.
	FailSave bool
}

// NewMemory returns a Memory persister, optionally pre-seeded with products.
func NewMemory(products ...model.Product) *Memory {
	m := &Memory{}
	if len(products) > 0 {
		m.products = slices.Clone(products)
		m.saved = true
	}
	return m
}

// Load returns a copy of the saved list, or ErrNotFound before any save.
func (m *Memory) Load() ([]model.Product, error) {
	if !m.saved {
		return nil, ErrNotFound
	}
	return slices.Clone(m.products), nil
}

// Save keeps a copy of products unless FailSave is set.
func (m *Memory) Save(products []model.Product) error {
	if m.FailSave {
		return errors.New("memory persister: save disabled")
	}
	m.products = slices.Clone(products)
	m.saved = true
	m.saves++
	return nil
}

// Path returns ":memory:" to indicate nothing is written to disk.
func (m *Memory) Path() string { return ":memory:" }

// Saves reports how many successful saves have happened.
func (m *Memory) Saves() int { return m.saves }

var (
	_ Persister = (*JSONFile)(nil)
	_ Persister = (*Memory)(nil)
)
