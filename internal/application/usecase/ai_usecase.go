package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/stoyanovb/gradina-api/internal/application/dto"
	"github.com/stoyanovb/gradina-api/internal/application/ports"
	"github.com/stoyanovb/gradina-api/internal/domain"
)

// AIUseCase wraps the LLM port for admin content generation.
type AIUseCase struct {
	llm ports.LLMService
}

// NewAIUseCase constructs the use case.
func NewAIUseCase(llm ports.LLMService) *AIUseCase {
	return &AIUseCase{llm: llm}
}

// DescribeProduct generates a Bulgarian product description. The timeout
// bounds the upstream call independently of the server write timeout.
func (uc *AIUseCase) DescribeProduct(ctx context.Context, in dto.DescribeProductRequest) (*dto.DescribeProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	text, err := uc.llm.GenerateProductDescription(ctx, in.Name, in.LatinName, in.Category, in.Keywords)
	if err != nil {
		return nil, err
	}
	return &dto.DescribeProductResponse{Description: strings.TrimSpace(text)}, nil
}
