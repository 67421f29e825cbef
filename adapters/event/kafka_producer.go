package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/GaluhWikri/Portofolio-Galuh/internal/config"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

const (
	TopicPortfolioEvents = "portfolio.events"
	TopicMediaEvents     = "media.events"

	EventTypePortfolioSaved = "portfolio.saved"
	EventTypeMediaUploaded  = "media.uploaded"
)

type PortfolioEventPayload struct {
	EventType    string    `json:"event_type"`
	ToolCount    int       `json:"tool_count"`
	ProjectCount int       `json:"project_count"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type MediaEventPayload struct {
	EventType  string    `json:"event_type"`
	Path       string    `json:"path"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaProducerClient publishes content-change events. A nil client is a
// valid no-op producer: the portfolio API must run standalone when no
// brokers are configured.
type KafkaProducerClient struct {
	portfolioWriter *kafka.Writer
	mediaWriter     *kafka.Writer
	logger          logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) *KafkaProducerClient {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		log.Info("Kafka brokers not configured, content events disabled.")
		return nil
	}

	portfolioWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}
	mediaWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicMediaEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka Producers successfully.")
	return &KafkaProducerClient{
		portfolioWriter: portfolioWriter,
		mediaWriter:     mediaWriter,
		logger:          log,
	}
}

func (c *KafkaProducerClient) PublishPortfolioSaved(ctx context.Context, payload PortfolioEventPayload) error {
	if c == nil {
		return nil
	}
	return c.publish(ctx, c.portfolioWriter, payload)
}

func (c *KafkaProducerClient) PublishMediaUploaded(ctx context.Context, payload MediaEventPayload) error {
	if c == nil {
		return nil
	}
	return c.publish(ctx, c.mediaWriter, payload)
}

func (c *KafkaProducerClient) publish(ctx context.Context, w *kafka.Writer, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return w.WriteMessages(ctx, kafka.Message{Value: value})
}

func (c *KafkaProducerClient) Close() {
	if c == nil {
		return
	}
	if c.portfolioWriter != nil {
		c.portfolioWriter.Close()
	}
	if c.mediaWriter != nil {
		c.mediaWriter.Close()
	}
	c.logger.Info("Closed Kafka Producers")
}
