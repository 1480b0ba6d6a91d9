// Package agent runs an Anthropic-driven tool loop over registered
// tools: the model decides which tool to call, the agent executes it
// and feeds the result back until the model produces a final answer.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/openfax/faxtools/chatmodel"
	"github.com/openfax/faxtools/tools"
)

var logger = xlog.NewPackageLogger("github.com/openfax/faxtools", "agent")

// Completer abstracts the Anthropic Messages API, for tests.
type Completer interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Agent drives a conversation with the model, dispatching tool calls
// to the registered tools and recording the history in a MessageStore.
type Agent struct {
	cfg        Config
	completer  Completer
	tools      map[string]tools.ITool
	toolParams []anthropic.ToolUnionParam
	store      MessageStore
	callback   tools.Callback
}

// New returns an agent for the given configuration and tools.
func New(cfg *Config, list ...tools.ITool) (*Agent, error) {
	c, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	client := anthropic.NewClient(option.WithAPIKey(c.APIKey))

	a := &Agent{
		cfg:       *c,
		completer: &client.Messages,
		tools:     make(map[string]tools.ITool),
		store:     NewMemoryStore(),
	}
	for _, t := range list {
		a.tools[t.Name()] = t
		a.toolParams = append(a.toolParams, toolParam(t))
	}
	return a, nil
}

// WithCallback sets the callback notified of tool invocations.
func (a *Agent) WithCallback(cb tools.Callback) *Agent {
	a.callback = cb
	return a
}

// WithStore sets the message store keeping the conversation history.
func (a *Agent) WithStore(store MessageStore) *Agent {
	a.store = store
	return a
}

// WithCompleter overrides the model client, mostly for tests.
func (a *Agent) WithCompleter(completer Completer) *Agent {
	a.completer = completer
	return a
}

func toolParam(t tools.ITool) anthropic.ToolUnionParam {
	var schemaMap map[string]any
	bs, _ := json.Marshal(t.Parameters())
	_ = json.Unmarshal(bs, &schemaMap)

	return anthropic.ToolUnionParam{
		OfTool: &anthropic.ToolParam{
			Name:        t.Name(),
			Description: anthropic.String(t.Description()),
			InputSchema: anthropic.ToolInputSchemaParam{
				Type:       "object",
				Properties: schemaMap["properties"],
			},
		},
	}
}

// Run sends the input to the model and loops until the model stops
// requesting tools or MaxTurns is reached. It returns the model's
// final text response.
func (a *Agent) Run(ctx context.Context, chatID, input string) (string, error) {
	if chatID == "" {
		chatID = chatmodel.GetChatID(ctx)
	}
	if chatID == "" {
		chatID = chatmodel.NewChatID()
	}

	messages, err := a.store.Messages(ctx, chatID)
	if err != nil {
		return "", errors.WithMessage(err, "failed to load history")
	}

	userMsg := anthropic.NewUserMessage(anthropic.NewTextBlock(input))
	messages = append(messages, userMsg)
	if err := a.store.Add(ctx, chatID, userMsg); err != nil {
		return "", errors.WithMessage(err, "failed to store message")
	}

	var finalText string
	for turn := 0; turn < a.cfg.MaxTurns; turn++ {
		params := anthropic.MessageNewParams{
			Model:     anthropic.Model(a.cfg.Model),
			MaxTokens: int64(a.cfg.MaxTokens),
			Messages:  messages,
			Tools:     a.toolParams,
		}
		if a.cfg.SystemPrompt != "" {
			params.System = []anthropic.TextBlockParam{{Text: a.cfg.SystemPrompt}}
		}

		resp, err := a.completer.New(ctx, params)
		if err != nil {
			return "", errors.WithMessage(err, "failed to call model")
		}

		assistantMsg := resp.ToParam()
		messages = append(messages, assistantMsg)
		if err := a.store.Add(ctx, chatID, assistantMsg); err != nil {
			return "", errors.WithMessage(err, "failed to store message")
		}

		var toolResults []anthropic.ContentBlockParamUnion
		for _, block := range resp.Content {
			switch b := block.AsAny().(type) {
			case anthropic.TextBlock:
				finalText = b.Text
			case anthropic.ToolUseBlock:
				inputJSON, _ := json.Marshal(b.Input)
				out := a.executeTool(ctx, b.Name, string(inputJSON))
				toolResults = append(toolResults, anthropic.NewToolResultBlock(b.ID, out, false))
			}
		}

		if len(toolResults) == 0 {
			return finalText, nil
		}

		resultMsg := anthropic.NewUserMessage(toolResults...)
		messages = append(messages, resultMsg)
		if err := a.store.Add(ctx, chatID, resultMsg); err != nil {
			return "", errors.WithMessage(err, "failed to store message")
		}
	}

	logger.ContextKV(ctx, xlog.WARNING,
		"reason", "max_turns_reached",
		"chat_id", chatID,
	)
	return finalText, nil
}

func (a *Agent) executeTool(ctx context.Context, name, input string) string {
	tool, ok := a.tools[name]
	if !ok {
		logger.ContextKV(ctx, xlog.ERROR, "reason", "tool_not_found", "tool", name)
		return fmt.Sprintf("Error: unknown tool: %s", name)
	}

	if a.callback != nil {
		a.callback.OnToolStart(ctx, tool, input)
	}
	out, err := tool.Call(ctx, input)
	if err != nil {
		if a.callback != nil {
			a.callback.OnToolError(ctx, tool, input, err)
		}
		return "Error: " + err.Error()
	}
	if a.callback != nil {
		a.callback.OnToolEnd(ctx, tool, input, out)
	}
	return out
}
