package media

import (
	"context"
	"io"
	"time"

	"github.com/GaluhWikri/Portofolio-Galuh/adapters/event"
	"github.com/GaluhWikri/Portofolio-Galuh/internal/application/service"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/apperror"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

type UploadMediaUseCase struct {
	uploader    service.Uploader
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewUploadMediaUseCase(u service.Uploader, k *event.KafkaProducerClient, log logger.Logger) *UploadMediaUseCase {
	return &UploadMediaUseCase{uploader: u, kafkaClient: k, logger: log}
}

type UploadMediaInput struct {
	File     io.Reader
	Filename string
}

type UploadMediaOutput struct {
	Path string
}

func (uc *UploadMediaUseCase) Execute(ctx context.Context, input UploadMediaInput) (*UploadMediaOutput, error) {
	path, err := uc.uploader.Upload(ctx, input.File, input.Filename)
	if err != nil {
		return nil, apperror.NewStorage(err.Error(), err)
	}

	go func() {
		payload := event.MediaEventPayload{
			EventType:  event.EventTypeMediaUploaded,
			Path:       path,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.kafkaClient.PublishMediaUploaded(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka 'media.uploaded' event", err)
		}
	}()

	return &UploadMediaOutput{Path: path}, nil
}
