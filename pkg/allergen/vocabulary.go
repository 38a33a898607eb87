package allergen

import (
	"strings"
)

// Category is one canonical allergen category. Every allergen value stored or
// returned anywhere in the system is a member of Vocabulary; free-text input
// is funneled through Normalize first.
type Category string

const (
	Milk      Category = "Milk"
	Eggs      Category = "Eggs"
	Fish      Category = "Fish"
	Shellfish Category = "Shellfish"
	TreeNuts  Category = "Tree Nuts"
	Peanuts   Category = "Peanuts"
	Wheat     Category = "Wheat"
	Soy       Category = "Soy"
	Sesame    Category = "Sesame"
	Gluten    Category = "Gluten"
	Mustard   Category = "Mustard"
	Celery    Category = "Celery"
	Lupin     Category = "Lupin"
	Mollusks  Category = "Mollusks"
	Sulfites  Category = "Sulfites"
	Onion     Category = "Onion"
	Garlic    Category = "Garlic"
)

// Vocabulary is the fixed, ordered canonical set. Sorting of aggregated
// allergen lists follows this order.
var Vocabulary = []Category{
	Milk, Eggs, Fish, Shellfish, TreeNuts, Peanuts, Wheat, Soy, Sesame,
	Gluten, Mustard, Celery, Lupin, Mollusks, Sulfites, Onion, Garlic,
}

var rank = func() map[Category]int {
	m := make(map[Category]int, len(Vocabulary))
	for i, c := range Vocabulary {
		m[c] = i
	}
	return m
}()

// aliases map each category to lowercase keywords matched by substring
// containment against normalized input.
var aliases = map[Category][]string{
	Milk:      {"milk", "dairy", "lactose", "butter", "cheese", "cream", "yogurt", "whey", "casein", "parmesan", "mozzarella", "ghee"},
	Eggs:      {"egg", "albumin", "mayonnaise", "meringue"},
	Fish:      {"fish", "salmon", "tuna", "cod", "anchov", "sardine", "tilapia", "trout", "bass", "halibut"},
	Shellfish: {"shellfish", "shrimp", "crab", "lobster", "prawn", "crawfish", "crayfish", "krill"},
	TreeNuts:  {"tree nut", "treenut", "almond", "cashew", "walnut", "pecan", "hazelnut", "pistachio", "macadamia", "brazil nut"},
	Peanuts:   {"peanut", "groundnut"},
	Wheat:     {"wheat", "flour", "semolina", "couscous", "bulgur"},
	Soy:       {"soy", "soya", "tofu", "edamame", "tempeh", "miso"},
	Sesame:    {"sesame", "tahini"},
	Gluten:    {"gluten", "barley", "rye", "malt", "seitan"},
	Mustard:   {"mustard"},
	Celery:    {"celery", "celeriac"},
	Lupin:     {"lupin", "lupine"},
	Mollusks:  {"mollusk", "mollusc", "clam", "mussel", "oyster", "scallop", "squid", "octopus", "snail", "calamari", "cuttlefish"},
	Sulfites:  {"sulfite", "sulphite", "sulfur dioxide"},
	Onion:     {"onion", "shallot", "scallion", "chive", "leek"},
	Garlic:    {"garlic"},
}

// Normalize maps free-text allergen mentions to canonical categories. Input
// is compared case-insensitively and by substring containment against the
// alias table; anything unmatched is silently dropped. The result is
// deduplicated and returned in vocabulary order.
func Normalize(candidates []string) []Category {
	found := make(map[Category]bool)

	for _, raw := range candidates {
		text := strings.ToLower(strings.TrimSpace(raw))
		if text == "" {
			continue
		}
		for _, category := range Vocabulary {
			if matches(text, category) {
				found[category] = true
			}
		}
	}

	return SortCanonical(keys(found))
}

func matches(text string, category Category) bool {
	if text == strings.ToLower(string(category)) {
		return true
	}

	// Crustacean and mollusk names containing "fish" must not trigger the
	// plain "fish" keyword.
	if category == Fish {
		for _, notFish := range []string{"shellfish", "crawfish", "crayfish", "cuttlefish"} {
			text = strings.ReplaceAll(text, notFish, "")
		}
	}

	for _, keyword := range aliases[category] {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// Parse returns the canonical category for an exact (case-insensitive) name,
// without alias matching. Used when reading values we stored ourselves.
func Parse(raw string) (Category, bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	for _, category := range Vocabulary {
		if text == strings.ToLower(string(category)) {
			return category, true
		}
	}
	return "", false
}

// SortCanonical deduplicates and orders categories by their position in
// Vocabulary. Unknown values are dropped.
func SortCanonical(categories []Category) []Category {
	seen := make(map[Category]bool, len(categories))
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if _, ok := rank[c]; ok && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && rank[out[j]] < rank[out[j-1]]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Join serializes categories for storage in a text column.
func Join(categories []Category) string {
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ",")
}

// Split parses a stored comma-joined list. Values that are no longer part of
// the vocabulary are dropped rather than surfaced as unknown allergens.
func Split(stored string) []Category {
	if strings.TrimSpace(stored) == "" {
		return nil
	}
	var out []Category
	for _, part := range strings.Split(stored, ",") {
		if category, ok := Parse(part); ok {
			out = append(out, category)
		}
	}
	return SortCanonical(out)
}

// CategoryStrings converts categories to plain strings for API responses.
func CategoryStrings(categories []Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out
}

// Contains reports whether category is present in the list.
func Contains(categories []Category, category Category) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}

func keys(set map[Category]bool) []Category {
	out := make([]Category, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}
