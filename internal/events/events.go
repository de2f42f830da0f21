// Package events publishes pet lifecycle events to Kafka as CloudEvent-shaped
// messages. Publishing is best-effort: a failed publish never fails the
// request that triggered it.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TopicPetEvents is the topic carrying pet lifecycle events.
const TopicPetEvents = "pet.events"

// Pet lifecycle event types.
const (
	PetCreated = "pet.created"
	PetUpdated = "pet.updated"
	PetAdopted = "pet.adopted"
	PetDeleted = "pet.deleted"
)

// CloudEvent is the wire envelope for every published event.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// ParseData unmarshals the event payload into v.
func (e CloudEvent) ParseData(v any) error {
	return json.Unmarshal(e.Data, v)
}

// PetEvent is the payload of every pet lifecycle event.
type PetEvent struct {
	PetID      uuid.UUID `json:"pet_id"`
	Name       string    `json:"name"`
	Species    string    `json:"species"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
