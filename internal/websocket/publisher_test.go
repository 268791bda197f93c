package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_Implements_EventPublisher(t *testing.T) {
	var _ EventPublisher = (*Hub)(nil)
}

func TestHub_Publish(t *testing.T) {
	hub := NewHub()

	client := newMockClient("client-1")
	hub.Register(client)

	var publisher EventPublisher = hub
	publisher.Publish(ExpenseCreated(map[string]interface{}{"id": "e-42"}))

	waitForMessages(t, client, 1)
}

func TestNoOpPublisher_Publish(t *testing.T) {
	publisher := &NoOpPublisher{}

	assert.NotPanics(t, func() {
		publisher.Publish(ExpenseCreated(map[string]interface{}{"id": "e-1"}))
	})
}

func TestNoOpPublisher_Implements_EventPublisher(t *testing.T) {
	var _ EventPublisher = (*NoOpPublisher)(nil)
}
