package agent

import (
	"context"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
)

// MessageStore keeps the conversation history per chat ID.
type MessageStore interface {
	Messages(ctx context.Context, chatID string) ([]anthropic.MessageParam, error)
	Add(ctx context.Context, chatID string, msg anthropic.MessageParam) error
	Reset(ctx context.Context, chatID string) error
}

type inMemory struct {
	mu      sync.RWMutex
	storage map[string][]anthropic.MessageParam
}

func NewMemoryStore() MessageStore {
	return &inMemory{}
}

func (m *inMemory) Messages(_ context.Context, chatID string) ([]anthropic.MessageParam, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.storage == nil {
		return nil, nil
	}
	return m.storage[chatID], nil
}

func (m *inMemory) Add(_ context.Context, chatID string, msg anthropic.MessageParam) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.storage == nil {
		// create on first use
		m.storage = make(map[string][]anthropic.MessageParam)
	}
	m.storage[chatID] = append(m.storage[chatID], msg)
	return nil
}

func (m *inMemory) Reset(_ context.Context, chatID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.storage != nil {
		delete(m.storage, chatID)
	}
	return nil
}
