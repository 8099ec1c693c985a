package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/config"
	"github.com/segmentio/kafka-go"
)

const (
	TopicVideoEvents = "video.events"
	TopicLeadEvents  = "lead.events"
)

type VideoEventType string

const (
	VideoEventTypeUploaded      VideoEventType = "video.uploaded"
	VideoEventTypeCharged       VideoEventType = "video.charged"
	VideoEventTypeDeleted       VideoEventType = "video.deleted"
	VideoEventTypeQuotaExceeded VideoEventType = "video.quota_exceeded"
)

type VideoEventPayload struct {
	EventType   VideoEventType `json:"event_type"`
	AssetID     uuid.UUID      `json:"asset_id"`
	TeamID      uuid.UUID      `json:"team_id"`
	ProviderID  string         `json:"provider_id"`
	DurationSec int            `json:"duration_sec,omitempty"`
	Minutes     int            `json:"minutes,omitempty"`
}

type LeadEventPayload struct {
	LeadID     uuid.UUID  `json:"lead_id"`
	TeamID     uuid.UUID  `json:"team_id"`
	PropertyID *uuid.UUID `json:"property_id,omitempty"`
	Email      string     `json:"email"`
}

type KafkaProducerClient struct {
	VideoEventsWriter *kafka.Writer
	LeadEventsWriter  *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'video.events'
	videoWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicVideoEvents,
		Balancer: &kafka.LeastBytes{},
	}

	// writer 'lead.events'
	leadWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicLeadEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		VideoEventsWriter: videoWriter,
		LeadEventsWriter:  leadWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishVideoEvent(ctx context.Context, payload VideoEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal video event: %w", err)
	}
	return c.VideoEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.AssetID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishLeadEvent(ctx context.Context, payload LeadEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal lead event: %w", err)
	}
	return c.LeadEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.LeadID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.VideoEventsWriter != nil {
		c.VideoEventsWriter.Close()
	}
	if c.LeadEventsWriter != nil {
		c.LeadEventsWriter.Close()
	}
}
