package ports

import "context"

// LLMService generates marketing copy for the catalog. Implemented in
// infrastructure/ai over the Anthropic Messages API.
type LLMService interface {
	// GenerateProductDescription returns a short Bulgarian product
	// description for the given name/botanical name/category/keywords.
	GenerateProductDescription(ctx context.Context, name, latinName, category, keywords string) (string, error)
}
