package fax

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
	mcp "github.com/metoro-io/mcp-golang"
	"github.com/openfax/faxtools/llmutils"
	"github.com/openfax/faxtools/schema"
	"github.com/openfax/faxtools/tools"
)

const HistoryToolName = "FaxHistory"

// HistoryRequest represents the tool input.
type HistoryRequest struct {
	Limit int `json:"limit,omitempty" yaml:"limit,omitempty" jsonschema:"title=Limit,description=Maximum number of fax records to return. Omit to use the service default."`
}

// GetContent gets the content of the message for the chat history
func (r *HistoryRequest) GetContent() string {
	return llmutils.ToJSON(r)
}

// HistoryRecord is one line of the fax history.
type HistoryRecord struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	To     string `json:"to"`
	Date   string `json:"date"`
}

// HistoryResult is the list of recent faxes, most recent first.
type HistoryResult struct {
	Records []HistoryRecord `json:"records"`
}

func (r *HistoryResult) String() string {
	if len(r.Records) == 0 {
		return "No faxes found."
	}
	var buf bytes.Buffer
	for _, rec := range r.Records {
		fmt.Fprintf(&buf, "- ID: %s\n", rec.ID)
		fmt.Fprintf(&buf, "  STATUS: %s\n", rec.Status)
		fmt.Fprintf(&buf, "  TO: %s\n", rec.To)
		fmt.Fprintf(&buf, "  DATE: %s\n", rec.Date)
	}
	return buf.String()
}

// GetContent gets the content of the message for the chat history
func (r *HistoryResult) GetContent() string {
	return r.String()
}

// HistoryTool lists recently sent faxes.
// Remote faults are contained and rendered like the other fax tools.
type HistoryTool struct {
	name        string
	description string
	funcParams  any

	client Client
}

var (
	_ tools.Tool[HistoryRequest, HistoryResult] = (*HistoryTool)(nil)
	_ tools.MCPTool[HistoryRequest]             = (*HistoryTool)(nil)
)

func NewHistoryTool(client Client) (*HistoryTool, error) {
	sc, err := schema.New(reflect.TypeOf(HistoryRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	tool := &HistoryTool{
		name: HistoryToolName,
		description: "Lists recently sent faxes with their status. " +
			"Input is a JSON object with an optional limit.",
		funcParams: sc.Parameters,
		client:     client,
	}
	return tool, nil
}

// WithDescription sets the description of the tool, to be used in the prompt.
func (t *HistoryTool) WithDescription(description string) *HistoryTool {
	t.description = description
	return t
}

func (t *HistoryTool) Name() string {
	return t.name
}

func (t *HistoryTool) Description() string {
	return t.description
}

func (t *HistoryTool) Parameters() any {
	return t.funcParams
}

// Run lists up to req.Limit fax records, service-defined ordering.
func (t *HistoryTool) Run(ctx context.Context, req *HistoryRequest) (*HistoryResult, error) {
	records, err := t.client.ListFaxes(ctx, req.Limit)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to list faxes")
	}

	res := &HistoryResult{}
	for _, rec := range records {
		res.Records = append(res.Records, HistoryRecord{
			ID:     rec.ID,
			Status: rec.Status,
			To:     rec.To,
			Date:   rec.CreatedAt,
		})
	}
	return res, nil
}

// Invoke parses the input and runs the tool, always producing a Result.
// An empty input is treated as an empty request, not a parse failure.
func (t *HistoryTool) Invoke(ctx context.Context, input string) *Result {
	var req HistoryRequest
	if input != "" {
		if err := json.Unmarshal(llmutils.CleanJSON([]byte(input)), &req); err != nil {
			return invalidJSONResult()
		}
	}
	return t.invoke(ctx, &req)
}

func (t *HistoryTool) invoke(ctx context.Context, req *HistoryRequest) *Result {
	res, err := t.Run(ctx, req)
	if err != nil {
		return remoteResult("Error retrieving fax history: %s", err)
	}
	return okResult(res.String())
}

func (t *HistoryTool) Call(ctx context.Context, input string) (string, error) {
	return t.Invoke(ctx, input).String(), nil
}

func (t *HistoryTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, t.RunMCP)
}

func (t *HistoryTool) RunMCP(ctx context.Context, req *HistoryRequest) (*mcp.ToolResponse, error) {
	res := t.invoke(ctx, req)
	return mcp.NewToolResponse(mcp.NewTextContent(res.String())), nil
}
