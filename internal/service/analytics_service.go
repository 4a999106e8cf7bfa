package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"telecom-complaint-be/internal/pkg/logger"
	"telecom-complaint-be/pkg/events"
)

// IAnalyticsService consumes pipeline events and keeps rolling per-sector
// counts. It is purely observational and never feeds back into the pipeline.
type IAnalyticsService interface {
	Consume(ctx context.Context) error
	Snapshot() AnalyticsSnapshot
}

// AnalyticsSnapshot is a point-in-time copy of the aggregated counters.
type AnalyticsSnapshot struct {
	ResolvedBySector map[string]int
	Rejected         int
}

type analyticsService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sysLogger logger.ILogger

	mu               sync.Mutex
	resolvedBySector map[string]int
	rejected         int
}

func NewAnalyticsService(pubSub *gochannel.GoChannel, topicName string, sysLogger logger.ILogger) IAnalyticsService {
	return &analyticsService{
		pubSub:           pubSub,
		topicName:        topicName,
		sysLogger:        sysLogger,
		resolvedBySector: make(map[string]int),
	}
}

func (as *analyticsService) Consume(ctx context.Context) error {
	messages, err := as.pubSub.Subscribe(ctx, as.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			as.processMessage(msg)
		}
	}()

	return nil
}

func (as *analyticsService) processMessage(msg *message.Message) {
	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		as.sysLogger.Error("analytics", "failed to unmarshal pipeline event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	sector, _ := evt.Data["sector"].(string)

	as.mu.Lock()
	switch evt.Type {
	case events.TypeComplaintResolved:
		as.resolvedBySector[sector]++
	case events.TypeComplaintRejected:
		as.rejected++
	}
	as.mu.Unlock()

	as.sysLogger.Info("analytics", "pipeline event recorded", map[string]interface{}{
		"type":   evt.Type,
		"sector": sector,
	})
	msg.Ack()
}

func (as *analyticsService) Snapshot() AnalyticsSnapshot {
	as.mu.Lock()
	defer as.mu.Unlock()

	resolved := make(map[string]int, len(as.resolvedBySector))
	for k, v := range as.resolvedBySector {
		resolved[k] = v
	}
	return AnalyticsSnapshot{
		ResolvedBySector: resolved,
		Rejected:         as.rejected,
	}
}
