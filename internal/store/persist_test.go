package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/fairyhunter13/inventory-tracker/internal/model"
)

func sampleProducts(n int) []model.Product {
	out := make([]model.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Product{
			ID:    uuid.New(),
			Name:  "p" + string(rune('0'+i)),
			Price: 0.25 * float64(i+1),
			Stock: i * 3,
		})
	}
	return out
}

func TestJSONFileRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		path := filepath.Join(t.TempDir(), "inventory.json")
		f := NewJSONFile(path)
		want := sampleProducts(n)
		if err := f.Save(want); err != nil {
			t.Fatalf("n=%d save: %v", n, err)
		}
		got, err := f.Load()
		if err != nil {
			t.Fatalf("n=%d load: %v", n, err)
		}
		if len(got) != n {
			t.Fatalf("n=%d: loaded %d products", n, len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("n=%d product %d: got %+v want %+v", n, i, got[i], want[i])
			}
		}
	}
}

func TestStoreRoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	s := New(NewJSONFile(path), quietLogger())
	s.AddProduct("Apple", 0.99, 20)
	s.AddProduct("Milk", 2.49, 3)
	want := s.Products()

	reloaded := New(NewJSONFile(path), quietLogger())
	reloaded.Load()
	got := reloaded.Products()
	if len(got) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("product %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestJSONFileLoadMissing(t *testing.T) {
	f := NewJSONFile(filepath.Join(t.TempDir(), "nope.json"))
	_, err := f.Load()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJSONFileLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte("{invalid json!!!"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := NewJSONFile(path).Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}

	s := New(NewJSONFile(path), quietLogger())
	s.AddProduct("Stale", 1, 1)
	s.Load()
	if s.Len() != 0 {
		t.Fatalf("expected corrupt file to reset store, got %d products", s.Len())
	}
}

func TestJSONFileLoadNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte("null"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := NewJSONFile(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestJSONFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "inventory.json")
	f := NewJSONFile(path)
	if err := f.Save(nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty array, got %q", data)
	}

	p := sampleProducts(1)[0]
	if err := f.Save([]model.Product{p}); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "\n  {\n    \"id\": ") {
		t.Fatalf("expected indented output, got %s", data)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if id, ok := raw[0]["id"].(string); !ok || id != p.ID.String() {
		t.Fatalf("expected string id %s, got %#v", p.ID, raw[0]["id"])
	}
	if _, ok := raw[0]["price"].(float64); !ok {
		t.Fatalf("expected numeric price, got %#v", raw[0]["price"])
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestJSONFileSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	f := NewJSONFile(path)
	if err := f.Save(sampleProducts(4)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := f.Save(sampleProducts(1)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := f.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected full overwrite, got %d products", len(got))
	}
}

// blockedPath returns a file path whose parent is a regular file, so
// MkdirAll fails.
func blockedPath(t *testing.T) string {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return filepath.Join(blocker, "inventory.json")
}

func TestJSONFileSaveFailure(t *testing.T) {
	f := NewJSONFile(blockedPath(t))
	if err := f.Save(sampleProducts(2)); err == nil {
		t.Fatalf("expected save error")
	}
	if _, err := os.Stat(f.Path()); err == nil {
		t.Fatalf("expected no file after failed save")
	}
}

func TestStoreSaveFailureOnDisk(t *testing.T) {
	s := New(NewJSONFile(blockedPath(t)), quietLogger())
	s.AddProduct("Widget", 1, 1)
	if s.Len() != 1 {
		t.Fatalf("expected in-memory product after failed save")
	}
	if err := s.Save(); err == nil {
		t.Fatalf("expected save error")
	}
}
