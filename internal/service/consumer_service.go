package service

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"riskiq-be/internal/pkg/logger"
	"riskiq-be/pkg/corpus"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
	DocumentsIndexed() int64
	ChunksIndexed() int64
}

// consumerService follows corpus ingestion progress on the in-process event
// bus and keeps running totals for logs and the health surface.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger

	documents atomic.Int64
	chunks    atomic.Int64
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var event corpus.DocumentIndexedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal ingest event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.documents.Add(1)
	cs.chunks.Add(int64(event.Chunks))
	cs.log.Info("consumer", "Indexed document", map[string]interface{}{
		"document_id":  event.DocumentId,
		"chunks":       event.Chunks,
		"total_chunks": cs.chunks.Load(),
	})
	msg.Ack()
}

func (cs *consumerService) DocumentsIndexed() int64 {
	return cs.documents.Load()
}

func (cs *consumerService) ChunksIndexed() int64 {
	return cs.chunks.Load()
}
