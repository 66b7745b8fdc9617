// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cat.Len() != 48 {
		t.Errorf("Len() = %d, want 48", cat.Len())
	}

	wantDims := []string{"Instalações Físicas", "Equipamentos", "Ferramentas", "Postos de Trabalho"}
	if diff := cmp.Diff(wantDims, cat.Dimensions()); diff != "" {
		t.Errorf("Dimensions() mismatch (-want +got):\n%s", diff)
	}

	for _, d := range cat.Dimensions() {
		if n := len(cat.ByDimension(d)); n != 12 {
			t.Errorf("dimension %q has %d items, want 12", d, n)
		}
	}

	// the eight reverse-coded items
	wantReverse := map[string]bool{
		"IF12": true, "EQ11": true, "EQ12": true, "FE08": true,
		"FE11": true, "PT10": true, "PT11": true, "PT12": true,
	}
	for _, item := range cat.Items() {
		if item.Reverse != wantReverse[item.ID] {
			t.Errorf("item %s reverse = %v, want %v", item.ID, item.Reverse, wantReverse[item.ID])
		}
	}
}

func TestLoad_OrderPreserved(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	items := cat.Items()
	if items[0].ID != "IF01" {
		t.Errorf("first item = %s, want IF01", items[0].ID)
	}
	if items[47].ID != "PT12" {
		t.Errorf("last item = %s, want PT12", items[47].ID)
	}
}

func TestByID(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	item, ok := cat.ByID("FE08")
	if !ok {
		t.Fatal("ByID(FE08) not found")
	}
	if item.Dimension != "Ferramentas" || !item.Reverse {
		t.Errorf("FE08 = %+v, want reverse item in Ferramentas", item)
	}

	if _, ok := cat.ByID("XX99"); ok {
		t.Error("ByID(XX99) found a nonexistent item")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "items: []"},
		{"not yaml", ":::"},
		{"duplicate id", `
items:
  - {id: A1, dimension: D, text: t, reverse: false}
  - {id: A1, dimension: D, text: t2, reverse: false}
`},
		{"missing dimension", `
items:
  - {id: A1, dimension: "", text: t, reverse: false}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("Parse() succeeded, want error")
			}
		})
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	items := cat.Items()
	items[0].ID = "mutated"

	if cat.Items()[0].ID != "IF01" {
		t.Error("mutating the returned slice changed the catalog")
	}
}
