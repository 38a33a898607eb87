package menu

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestWriteCSVFormat(t *testing.T) {
	sections := []ExportSection{
		{
			Category: "Mains",
			Dishes: []ExportDish{
				{
					Name:           "Shrimp Pasta",
					Description:    "Creamy shrimp pasta",
					Price:          14.5,
					Allergens:      []string{"Milk", "Shellfish", "Wheat"},
					CrossContact:   []string{"Fish"},
					Removable:      []string{"Parmesan"},
					Substitutable:  []string{"Pasta (Rice Noodles)"},
					Calories:       640,
					ProteinG:       28,
					NutritionKnown: true,
				},
			},
		},
		{
			Category: "Salads",
			Dishes: []ExportDish{
				{Name: "Garden Salad", Price: 8},
			},
		},
	}

	data, err := WriteCSV(sections)
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	text := string(data)
	if !strings.HasPrefix(text, "\xEF\xBB\xBF") {
		t.Fatalf("export must start with a UTF-8 BOM")
	}

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(text, "\xEF\xBB\xBF")))
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}

	// header, 2x(category + dishes + blank)
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	if rows[0][0] != "Category" || rows[0][1] != "Dish Name" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "Mains" || rows[1][1] != "" {
		t.Fatalf("expected category row, got %v", rows[1])
	}
	if rows[2][1] != "Shrimp Pasta" || rows[2][4] != "Milk; Shellfish; Wheat" {
		t.Fatalf("unexpected dish row: %v", rows[2])
	}
	if rows[2][8] != "640" || rows[2][9] != "28.0" {
		t.Fatalf("unexpected nutrition columns: %v", rows[2])
	}

	// blank separator between categories
	for _, cell := range rows[3] {
		if cell != "" {
			t.Fatalf("expected blank separator row, got %v", rows[3])
		}
	}
	if rows[4][0] != "Salads" {
		t.Fatalf("expected second category row, got %v", rows[4])
	}
}

func TestWriteCSVUnknownNutritionBlank(t *testing.T) {
	sections := []ExportSection{
		{Category: "Mains", Dishes: []ExportDish{{Name: "Mystery Stew", Price: 9.99}}},
	}

	data, err := WriteCSV(sections)
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\xEF\xBB\xBF")))
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if rows[2][8] != "" || rows[2][9] != "" {
		t.Fatalf("unknown nutrition should leave columns blank, got %v", rows[2])
	}
}

func TestExportFilename(t *testing.T) {
	if got := exportFilename("La Tavola"); got != "la-tavola-menu-export.csv" {
		t.Fatalf("unexpected filename: %s", got)
	}
	if got := exportFilename("  "); got != "menu-menu-export.csv" {
		t.Fatalf("unexpected fallback filename: %s", got)
	}
}
