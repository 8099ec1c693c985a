package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/maslima80/listingshow/adapters/event"
	"github.com/maslima80/listingshow/adapters/media_storage"
	"github.com/maslima80/listingshow/adapters/persistence"
	quotaUC "github.com/maslima80/listingshow/internal/application/usecase/quota"
	videoUC "github.com/maslima80/listingshow/internal/application/usecase/video"
	"github.com/maslima80/listingshow/internal/config"
	"github.com/maslima80/listingshow/pkg/logger"
)

const reconcileInterval = 5 * time.Minute

func main() {
	fmt.Println("Starting ListingShow Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaProducer, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaProducer.Close()

	// Video host
	videoHost, err := media_storage.NewBunnyAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize video host: %v", err)
	}

	// Repositories
	assetRepo := persistence.NewPostgresAssetRepo(dbPool, appLogger)
	propertyRepo := persistence.NewPostgresPropertyRepo(dbPool, appLogger)
	quotaRepo := persistence.NewPostgresQuotaRepo(dbPool, appLogger)
	planResolver := persistence.NewPostgresPlanResolver(dbPool, appLogger)
	locker := persistence.NewRedisLocker(redisClient)

	// Worker Use Cases
	quotaUseCase := quotaUC.NewQuotaUseCase(quotaRepo, planResolver)
	updateDurationUseCase := videoUC.NewUpdateDurationUseCase(assetRepo, propertyRepo, videoHost, quotaRepo, quotaUseCase, kafkaProducer, appLogger)
	poller := videoUC.NewDurationPoller(updateDurationUseCase, appLogger)
	reconcileUseCase := videoUC.NewReconcilePendingUseCase(assetRepo, updateDurationUseCase, locker, appLogger)

	ctx := context.Background()

	// Periodic safety net: sweep anything the per-upload pollers missed.
	go func() {
		ticker := time.NewTicker(reconcileInterval)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := reconcileUseCase.Execute(ctx); err != nil {
				log.Printf("ERROR: Reconciliation sweep failed: %v", err)
			}
		}
	}()

	// Kafka Consumer
	videoConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicVideoEvents,
		GroupID:  "video-duration-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer videoConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicVideoEvents)

	for {
		msg, err := videoConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.VideoEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(videoConsumer, msg)
			continue
		}

		// Only uploads need follow-up; charged/deleted events are for
		// downstream consumers (billing, analytics).
		if payload.EventType == event.VideoEventTypeUploaded {
			log.Printf("Polling duration for AssetID: %s", payload.AssetID)
			go poller.Run(ctx, payload.AssetID)
		}

		commitMessage(videoConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
