// Package main runs the inventory tracker demo: it loads the inventory,
// adds sample products, updates one product's stock and prints reports.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fairyhunter13/inventory-tracker/internal/config"
	"github.com/fairyhunter13/inventory-tracker/internal/model"
	"github.com/fairyhunter13/inventory-tracker/internal/obs"
	"github.com/fairyhunter13/inventory-tracker/internal/store"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		obs.InitLogger(os.Stderr, slog.LevelInfo)
		obs.Logger.Error("config_error", "error", err)
		os.Exit(1)
	}
	obs.InitLogger(os.Stderr, cfg.LogLevel)

	if err := run(cfg, os.Stdout, obs.Logger); err != nil {
		obs.Logger.Error("output_error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, stdout io.Writer, logger *slog.Logger) error {
	inv := store.New(store.NewJSONFile(cfg.Path()), logger)
	inv.Load()

	inv.AddProduct("Apple", 0.99, 20)
	inv.AddProduct("Milk", 2.49, 3)
	inv.AddProduct("Banana", 0.59, 10)

	if err := report(inv, stdout, "", cfg.LowStockThreshold); err != nil {
		return err
	}

	if milk, ok := firstNamed(inv.Products(), "Milk"); ok {
		inv.UpdateStock(milk.ID, 15)
	}

	return report(inv, stdout, " After Stock Update", cfg.LowStockThreshold)
}

// report prints the full listing followed by the low-stock listing, with
// suffix appended to both headings.
func report(inv *store.Store, w io.Writer, suffix string, threshold int) error {
	if _, err := fmt.Fprintf(w, "\n--- All Products%s ---\n", suffix); err != nil {
		return err
	}
	if err := inv.ListProducts(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n--- Low Stock Products%s ---\n", suffix); err != nil {
		return err
	}
	_, err := inv.LowStockProducts(w, threshold)
	return err
}

func firstNamed(products []model.Product, name string) (model.Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return model.Product{}, false
}
