package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/GaluhWikri/Portofolio-Galuh/adapters/event"
	"github.com/GaluhWikri/Portofolio-Galuh/internal/domain/portfolio"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

type SavePortfolioUseCase struct {
	repo        portfolio.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewSavePortfolioUseCase(repo portfolio.Repository, k *event.KafkaProducerClient, log logger.Logger) *SavePortfolioUseCase {
	return &SavePortfolioUseCase{repo: repo, kafkaClient: k, logger: log}
}

type SavePortfolioInput struct {
	Document *portfolio.Document
}

func (uc *SavePortfolioUseCase) Execute(ctx context.Context, input SavePortfolioInput) error {
	if err := uc.repo.Save(ctx, input.Document); err != nil {
		return fmt.Errorf("save portfolio failed: %w", err)
	}

	go func() {
		payload := event.PortfolioEventPayload{
			EventType:    event.EventTypePortfolioSaved,
			ToolCount:    len(input.Document.Tools),
			ProjectCount: len(input.Document.Projects),
			OccurredAt:   time.Now().UTC(),
		}
		if err := uc.kafkaClient.PublishPortfolioSaved(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka 'portfolio.saved' event", err)
		}
	}()

	return nil
}
