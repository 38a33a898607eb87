package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/dietary"
)

func buildDetectDishesPrompt() string {
	return `You are a menu digitization engine. Read the attached restaurant menu photo and respond ONLY with a valid JSON array. No explanations, no markdown, no extra text.

Each element must have exactly these fields:
{
  "name": "string",
  "category": "string",
  "price": number,
  "description": "string"
}

Use an empty string for a missing category or description and 0 for a missing price. If no menu items are visible, return [].`
}

func buildClassifyIngredientPrompt(name string, vocabulary []string) string {
	return fmt.Sprintf(`You are a food-safety classification engine. Given an ingredient name, respond ONLY with a JSON array of the allergen categories it belongs to. No explanations, no markdown.

Allowed categories (use these exact strings): %s

Return [] if the ingredient contains none of them.

Ingredient: %s`, strings.Join(vocabulary, ", "), name)
}

func buildDietaryStylePrompt(category string, dishes []dietary.StyleDishInput) string {
	payload, _ := json.Marshal(dishes)
	return fmt.Sprintf(`You are a dietary compliance engine. For the dietary category %q, judge each dish below using its ingredients and nutrition data. Respond ONLY with a JSON array, one element per dish:

{
  "dish_id": "string",
  "safe": boolean,
  "requires_modification": boolean,
  "modifications": ["string"]
}

Mark "safe": true with "requires_modification": true when removing or substituting a listed removable/substitutable ingredient would make the dish comply, and describe each change in "modifications". No explanations, no markdown.

Dishes:
%s`, category, string(payload))
}
