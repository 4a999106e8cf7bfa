package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "COMPLAINT_RESOLVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type codes emitted by the complaint pipeline.
const (
	TypeComplaintResolved = "COMPLAINT_RESOLVED"
	TypeComplaintRejected = "COMPLAINT_REJECTED"
)

// BaseEvent is the generic implementation used by the pipeline. It marshals
// directly onto the event bus.
type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// ComplaintResolved describes a pipeline run that reached the
// ResolutionGenerated terminal state.
func ComplaintResolved(sectorName, subprocessName, language string) BaseEvent {
	return BaseEvent{
		Type: TypeComplaintResolved,
		Data: map[string]interface{}{
			"sector":     sectorName,
			"subprocess": subprocessName,
			"language":   language,
		},
		OccurredAt: time.Now(),
	}
}

// ComplaintRejected describes a pipeline run the domain gate turned away.
func ComplaintRejected(sectorName, language, reasoning string) BaseEvent {
	return BaseEvent{
		Type: TypeComplaintRejected,
		Data: map[string]interface{}{
			"sector":    sectorName,
			"language":  language,
			"reasoning": reasoning,
		},
		OccurredAt: time.Now(),
	}
}
