package websocket

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id       string
	topics   []EntityType
	messages [][]byte
	mu       sync.Mutex
	closed   bool
}

func newMockClient(id string, topics ...EntityType) *mockClient {
	return &mockClient{
		id:       id,
		topics:   topics,
		messages: make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) Wants(entity EntityType) bool {
	if len(m.topics) == 0 {
		return true
	}
	for _, t := range m.topics {
		if t == entity {
			return true
		}
	}
	return false
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func waitForMessages(t *testing.T, c *mockClient, n int) {
	t.Helper()
	assert.Eventually(t, func() bool {
		return len(c.GetMessages()) == n
	}, time.Second, 5*time.Millisecond)
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")

	hub.Register(client1)
	hub.Register(client2)
	assert.Equal(t, 2, hub.ClientCount())

	// Registering the same ID again replaces the entry
	hub.Register(client1)
	assert.Equal(t, 2, hub.ClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(client2)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_Broadcast_TopicFiltering(t *testing.T) {
	hub := NewHub()

	all := newMockClient("all")
	expensesOnly := newMockClient("expenses", EntityTypeExpense)
	goalsOnly := newMockClient("goals", EntityTypeGoal)

	hub.Register(all)
	hub.Register(expensesOnly)
	hub.Register(goalsOnly)

	hub.Broadcast(ExpenseCreated(map[string]interface{}{"id": "e-1"}))

	waitForMessages(t, all, 1)
	waitForMessages(t, expensesOnly, 1)

	time.Sleep(10 * time.Millisecond)
	assert.Len(t, goalsOnly.GetMessages(), 0, "goal subscriber should not receive expense events")
}

func TestHub_Broadcast_MultipleFanOut(t *testing.T) {
	hub := NewHub()

	clients := make([]*mockClient, 5)
	for i := 0; i < 5; i++ {
		clients[i] = newMockClient(fmt.Sprintf("client-%d", i))
		hub.Register(clients[i])
	}

	hub.Broadcast(GoalUpdated(map[string]interface{}{"id": "g-1"}))

	for _, c := range clients {
		waitForMessages(t, c, 1)
	}
}

func TestHub_ConcurrentAccess(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	clientCount := 50

	clients := make([]*mockClient, clientCount)
	for i := 0; i < clientCount; i++ {
		clients[i] = newMockClient(fmt.Sprintf("client-%d", i), EntityTypes[i%len(EntityTypes)])
	}

	for i := 0; i < clientCount; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			hub.Register(clients[idx])
		}(i)
	}
	wg.Wait()

	assert.Equal(t, clientCount, hub.ClientCount())

	for i := 0; i < clientCount; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			hub.Broadcast(IncomeCreated(map[string]interface{}{"n": idx}))
		}(i)
		go func(idx int) {
			defer wg.Done()
			hub.Unregister(clients[idx])
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_UnregisterNonexistent(t *testing.T) {
	hub := NewHub()

	require.NotPanics(t, func() {
		hub.Unregister(newMockClient("client-1"))
	})
}

func TestHub_BroadcastWithNoClients(t *testing.T) {
	hub := NewHub()

	require.NotPanics(t, func() {
		hub.Broadcast(ExpenseDeleted(map[string]interface{}{"id": "e-1"}))
	})
}

func TestHub_BroadcastUnserializablePayload(t *testing.T) {
	hub := NewHub()
	client := newMockClient("client-1")
	hub.Register(client)

	hub.Broadcast(ExpenseCreated(make(chan int)))

	time.Sleep(10 * time.Millisecond)
	assert.Len(t, client.GetMessages(), 0)
}

func TestHub_CloseAll(t *testing.T) {
	hub := NewHub()
	c1 := newMockClient("client-1")
	c2 := newMockClient("client-2")
	hub.Register(c1)
	hub.Register(c2)

	hub.CloseAll()

	assert.Equal(t, 0, hub.ClientCount())
	assert.True(t, c1.IsClosed())
	assert.True(t, c2.IsClosed())
}
