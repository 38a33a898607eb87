package allergen

import (
	"context"

	"go.uber.org/zap"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/utils/logging"
)

// TextClassifier is the external text-understanding collaborator. It returns
// raw category-name strings; validation against the vocabulary happens here.
type TextClassifier interface {
	ClassifyIngredient(ctx context.Context, name string) ([]string, error)
}

type (
	Resolver interface {
		ResolveAllergens(ctx context.Context, ingredientName string) []Category
	}

	resolver struct {
		classifier TextClassifier
	}
)

func NewResolver(classifier TextClassifier) Resolver {
	return &resolver{classifier: classifier}
}

// ResolveAllergens returns the canonical allergen categories for an
// ingredient name. A failing or misconfigured classifier degrades to the
// empty set so allergen detection never blocks ingredient creation.
func (r *resolver) ResolveAllergens(ctx context.Context, ingredientName string) []Category {
	if r.classifier == nil {
		return nil
	}

	raw, err := r.classifier.ClassifyIngredient(ctx, ingredientName)
	if err != nil {
		logging.LogWarn("ingredient allergen classification failed",
			zap.String("ingredient", ingredientName),
			zap.Error(err),
		)
		return nil
	}

	return Normalize(raw)
}
