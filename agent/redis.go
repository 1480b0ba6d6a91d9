package agent

import (
	"context"
	"encoding/json"
	"path"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

// The redis store implements the MessageStore interface using Redis as
// the backend, so conversation history survives process restarts and
// can be shared between instances.
// The keys namespace is organized as follows:
// - `<prefix>/chatstore/messages/<chatID>` for storing chat messages

type redisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) MessageStore {
	return &redisStore{
		client: client,
		prefix: prefix,
	}
}

func (m *redisStore) messagesKey(chatID string) string {
	return path.Join(m.prefix, "chatstore", "messages", chatID)
}

func (m *redisStore) Messages(ctx context.Context, chatID string) ([]anthropic.MessageParam, error) {
	data, err := m.client.LRange(ctx, m.messagesKey(chatID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messages")
	}

	var messages []anthropic.MessageParam
	for _, item := range data {
		var msg anthropic.MessageParam
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal message")
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (m *redisStore) Add(ctx context.Context, chatID string, msg anthropic.MessageParam) error {
	bs, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal message")
	}
	if err := m.client.RPush(ctx, m.messagesKey(chatID), string(bs)).Err(); err != nil {
		return errors.Wrap(err, "failed to store message")
	}
	return nil
}

func (m *redisStore) Reset(ctx context.Context, chatID string) error {
	if err := m.client.Del(ctx, m.messagesKey(chatID)).Err(); err != nil {
		return errors.Wrap(err, "failed to reset messages")
	}
	return nil
}
