package agent_test

import (
	"context"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openfax/faxtools/agent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MemoryStore(t *testing.T) {
	ctx := context.Background()
	store := agent.NewMemoryStore()

	messages, err := store.Messages(ctx, "chat1")
	require.NoError(t, err)
	assert.Empty(t, messages)

	m1 := anthropic.NewUserMessage(anthropic.NewTextBlock("send the invoice"))
	m2 := anthropic.NewUserMessage(anthropic.NewTextBlock("check its status"))
	require.NoError(t, store.Add(ctx, "chat1", m1))
	require.NoError(t, store.Add(ctx, "chat1", m2))
	require.NoError(t, store.Add(ctx, "chat2", m1))

	messages, err = store.Messages(ctx, "chat1")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	messages, err = store.Messages(ctx, "chat2")
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	require.NoError(t, store.Reset(ctx, "chat1"))
	messages, err = store.Messages(ctx, "chat1")
	require.NoError(t, err)
	assert.Empty(t, messages)

	// other chats are unaffected
	messages, err = store.Messages(ctx, "chat2")
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}
