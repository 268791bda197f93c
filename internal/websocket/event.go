package websocket

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EventType represents the type of event (created, updated, deleted)
type EventType string

const (
	EventTypeCreated EventType = "created"
	EventTypeUpdated EventType = "updated"
	EventTypeDeleted EventType = "deleted"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeExpense EntityType = "expense"
	EntityTypeGoal    EntityType = "goal"
	EntityTypeIncome  EntityType = "income"
)

// EntityTypes lists every entity a client can subscribe to
var EntityTypes = []EntityType{EntityTypeExpense, EntityTypeGoal, EntityTypeIncome}

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "expense.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "expense"
	Payload   interface{} `json:"payload"`   // Full entity data, or {"id": ...} on delete
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ParseTopics parses a comma-separated list of entity types.
// An empty list subscribes to everything.
func ParseTopics(s string) ([]EntityType, error) {
	var topics []EntityType
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if !isEntityType(EntityType(part)) {
			return nil, fmt.Errorf("unknown topic %q", part)
		}
		topics = append(topics, EntityType(part))
	}
	return topics, nil
}

func isEntityType(t EntityType) bool {
	for _, e := range EntityTypes {
		if e == t {
			return true
		}
	}
	return false
}

// ExpenseCreated creates an expense.created event
func ExpenseCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeExpense, payload)
}

// ExpenseUpdated creates an expense.updated event
func ExpenseUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeExpense, payload)
}

// ExpenseDeleted creates an expense.deleted event
func ExpenseDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeExpense, payload)
}

// GoalCreated creates a goal.created event
func GoalCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeGoal, payload)
}

// GoalUpdated creates a goal.updated event
func GoalUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeGoal, payload)
}

// GoalDeleted creates a goal.deleted event
func GoalDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeGoal, payload)
}

// IncomeCreated creates an income.created event
func IncomeCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeIncome, payload)
}

// IncomeDeleted creates an income.deleted event
func IncomeDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeIncome, payload)
}
