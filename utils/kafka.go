package utils

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/royalhouse/fellowship-backend/config"
)

// Kafka topics used for cross-component signals
const (
	TopicScriptureUpdates = "scripture-updates"
	TopicMemberJoined     = "member-joined"
)

var (
	kafkaBrokers []string
	kafkaWriters = map[string]*kafka.Writer{}
	kafkaMu      sync.Mutex
)

// InitializeKafka stores broker config and pre-creates writers for the
// topics we publish to.
func InitializeKafka(cfg *config.Config) {
	kafkaBrokers = cfg.KafkaBrokers

	for _, topic := range []string{TopicScriptureUpdates, TopicMemberJoined} {
		kafkaWriters[topic] = &kafka.Writer{
			Addr:         kafka.TCP(kafkaBrokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: 5 * time.Second,
			// Auto-create topics on first publish in dev clusters
			AllowAutoTopicCreation: true,
		}
	}

	log.Println("✅ Kafka writers initialized:", kafkaBrokers)
}

// PublishEvent writes a single message to the given topic. Failures are
// logged, not fatal: a missing broker must never block an admin save.
func PublishEvent(ctx context.Context, topic string, payload []byte) error {
	kafkaMu.Lock()
	writer, ok := kafkaWriters[topic]
	kafkaMu.Unlock()
	if !ok {
		log.Printf("⚠️ Kafka writer for topic %q not initialized, dropping message", topic)
		return nil
	}

	err := writer.WriteMessages(ctx, kafka.Message{
		Value: payload,
		Time:  time.Now(),
	})
	if err != nil {
		log.Printf("⚠️ Kafka publish to %q failed: %v", topic, err)
	}
	return err
}

// StartConsumer runs a consumer loop for the topic in a background
// goroutine, invoking handler for every message. The loop exits when ctx
// is cancelled.
func StartConsumer(ctx context.Context, topic, groupID string, handler func([]byte)) {
	go func() {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:  kafkaBrokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
		defer reader.Close()

		log.Printf("🔄 Kafka consumer started: topic=%s group=%s", topic, groupID)

		for {
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("⚠️ Kafka read error on %q: %v", topic, err)
				time.Sleep(2 * time.Second)
				continue
			}
			handler(msg.Value)
		}
	}()
}

// CloseKafka flushes and closes all writers.
func CloseKafka() {
	kafkaMu.Lock()
	defer kafkaMu.Unlock()
	for topic, w := range kafkaWriters {
		if err := w.Close(); err != nil {
			log.Printf("⚠️ Kafka writer close failed for %q: %v", topic, err)
		}
	}
}
