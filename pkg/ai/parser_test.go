package ai

import (
	"testing"
)

func TestStripFences(t *testing.T) {
	fenced := "```json\n{\"name\": \"Pad Thai\"}\n```"
	if got := StripFences(fenced); got != `{"name": "Pad Thai"}` {
		t.Fatalf("unexpected fence strip result: %q", got)
	}

	plain := `{"name": "Pad Thai"}`
	if got := StripFences(plain); got != plain {
		t.Fatalf("unfenced text must pass through, got %q", got)
	}
}

func TestExtractJSONObject(t *testing.T) {
	chatty := "Sure! Here is the result:\n{\"allergens\": [\"Milk\"]}\nHope that helps."
	if got := ExtractJSONObject(chatty); got != `{"allergens": ["Milk"]}` {
		t.Fatalf("unexpected extraction: %q", got)
	}

	if got := ExtractJSONObject("no json here"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestExtractJSONArray(t *testing.T) {
	chatty := "```\n[{\"name\": \"Soup\"}, {\"name\": \"Salad\"}]\n```"
	want := `[{"name": "Soup"}, {"name": "Salad"}]`
	if got := ExtractJSONArray(chatty); got != want {
		t.Fatalf("unexpected extraction: %q", got)
	}

	if got := ExtractJSONArray("nothing structured"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
