package portfolio

import (
	"context"
	"fmt"

	"github.com/GaluhWikri/Portofolio-Galuh/internal/domain/portfolio"
)

type GetPortfolioUseCase struct {
	repo portfolio.Repository
}

func NewGetPortfolioUseCase(repo portfolio.Repository) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{repo: repo}
}

type GetPortfolioOutput struct {
	Document *portfolio.Document
}

func (uc *GetPortfolioUseCase) Execute(ctx context.Context) (*GetPortfolioOutput, error) {
	doc, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load portfolio failed: %w", err)
	}
	return &GetPortfolioOutput{Document: doc}, nil
}
