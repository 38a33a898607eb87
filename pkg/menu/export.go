package menu

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/allergen"
)

// utf8BOM makes spreadsheet applications decode the file as UTF-8.
const utf8BOM = "\xEF\xBB\xBF"

var exportHeader = []string{
	"Category", "Dish Name", "Description", "Price", "Allergens",
	"Cross-Contact Risks", "Removable Ingredients", "Substitutable Ingredients",
	"Calories", "Protein (g)",
}

type (
	// ExportDish is one dish row of the staff-facing CSV export.
	ExportDish struct {
		Name           string
		Description    string
		Price          float64
		Allergens      []string
		CrossContact   []string
		Removable      []string
		Substitutable  []string
		Calories       int
		ProteinG       float64
		NutritionKnown bool
	}

	// ExportSection groups dish rows under one menu category.
	ExportSection struct {
		Category string
		Dishes   []ExportDish
	}
)

// WriteCSV renders the export: a BOM, the column header, then per category a
// category row, its dish rows, and a blank separator row.
func WriteCSV(sections []ExportSection) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	blank := make([]string, len(exportHeader))
	for _, section := range sections {
		categoryRow := make([]string, len(exportHeader))
		categoryRow[0] = section.Category
		if err := w.Write(categoryRow); err != nil {
			return nil, err
		}

		for _, d := range section.Dishes {
			calories, protein := "", ""
			if d.NutritionKnown {
				calories = strconv.Itoa(d.Calories)
				protein = strconv.FormatFloat(d.ProteinG, 'f', 1, 64)
			}
			row := []string{
				"",
				d.Name,
				d.Description,
				strconv.FormatFloat(d.Price, 'f', 2, 64),
				strings.Join(d.Allergens, "; "),
				strings.Join(d.CrossContact, "; "),
				strings.Join(d.Removable, "; "),
				strings.Join(d.Substitutable, "; "),
				calories,
				protein,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}

		if err := w.Write(blank); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// loadExportRows builds the export sections from the active dishes, grouped
// by category in the catalog's display order.
func (s *menuService) loadExportRows(ctx context.Context, restaurantID string) ([]ExportSection, error) {
	dishes, err := s.dishRepository.GetActiveDishes(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	var sections []ExportSection
	index := make(map[string]int)
	for _, d := range dishes {
		category := d.Category
		if category == "" {
			category = "Uncategorized"
		}

		links, steps, err := s.loadAggregateRows(ctx, d.ID.String())
		if err != nil {
			return nil, err
		}
		summary := allergen.Aggregate(allergen.DishInput{
			DescriptionAllergens: allergen.Split(d.DescriptionAllergens),
		}, links, steps)

		crossContact := make(map[allergen.Category]bool)
		for _, step := range steps {
			for _, risk := range step.CrossContact {
				crossContact[risk] = true
			}
		}

		var removable, substitutable []string
		for _, link := range links {
			if link.IngredientName == "" {
				continue
			}
			if link.Removable {
				removable = append(removable, link.IngredientName)
			}
			if link.Substitutable {
				names := make([]string, 0, len(link.Substitutes))
				for _, substitute := range link.Substitutes {
					names = append(names, substitute.Name)
				}
				entry := link.IngredientName
				if len(names) > 0 {
					entry = fmt.Sprintf("%s (%s)", link.IngredientName, strings.Join(names, ", "))
				}
				substitutable = append(substitutable, entry)
			}
		}

		row := ExportDish{
			Name:           d.Name,
			Description:    d.Description,
			Price:          d.Price,
			Allergens:      allergen.CategoryStrings(summary.All),
			CrossContact:   allergen.CategoryStrings(allergen.SortCanonical(categorySetToSlice(crossContact))),
			Removable:      removable,
			Substitutable:  substitutable,
			Calories:       d.Calories,
			ProteinG:       d.ProteinG,
			NutritionKnown: d.NutritionKnown,
		}

		pos, ok := index[category]
		if !ok {
			index[category] = len(sections)
			sections = append(sections, ExportSection{Category: category})
			pos = index[category]
		}
		sections[pos].Dishes = append(sections[pos].Dishes, row)
	}
	return sections, nil
}

func categorySetToSlice(set map[allergen.Category]bool) []allergen.Category {
	out := make([]allergen.Category, 0, len(set))
	for category := range set {
		out = append(out, category)
	}
	return out
}
