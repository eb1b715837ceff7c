package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/printhub/printhub/internal/repository"
)

const (
	defaultBrokers = "localhost:9092"
	topic          = "marketplace_events"
	groupID        = "marketplace-notification-consumer"
)

// Stand-in for the real notification collaborator: reads lifecycle events
// and prints who should be notified.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = defaultBrokers
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(brokers, ","),
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Printf("Error closing kafka reader: %v", err)
		}
	}()

	log.Printf("Consumer connected to topic %q on brokers %s", topic, brokers)

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Shutdown signal received, stopping consumer.")
				return
			}
			log.Printf("Error reading message: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		var payload repository.NotificationPayload
		if err := json.Unmarshal(m.Value, &payload); err != nil {
			log.Printf("Skipping malformed event at offset %d: %v", m.Offset, err)
			continue
		}

		log.Printf("event=%s order=%s printers=%v chosen=%s at=%s",
			payload.EventType,
			payload.OrderID,
			payload.AffectedPrinterIDs,
			payload.ChosenPrinterID,
			payload.OccurredAt.Format(time.RFC3339))
	}
}
