package fax

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/cockroachdb/errors"
	mcp "github.com/metoro-io/mcp-golang"
	"github.com/openfax/faxtools/llmutils"
	"github.com/openfax/faxtools/schema"
	"github.com/openfax/faxtools/tools"
)

const StatusToolName = "FaxStatus"

// StatusRequest represents the tool input.
type StatusRequest struct {
	FaxID string `json:"fax_id" yaml:"fax_id" jsonschema:"title=Fax ID,description=The ID of the fax to check the status of."`
}

// GetContent gets the content of the message for the chat history
func (r *StatusRequest) GetContent() string {
	return llmutils.ToJSON(r)
}

// StatusResult is the status of a previously sent fax,
// sourced verbatim from the service record.
type StatusResult struct {
	FaxID     string  `json:"fax_id"`
	Status    string  `json:"status"`
	Completed bool    `json:"completed"`
	Cost      float64 `json:"cost"`
	PageCount int     `json:"pagecount"`
	CreatedAt string  `json:"created_at"`
}

func (r *StatusResult) String() string {
	return llmutils.ToJSONIndent(r)
}

// GetContent gets the content of the message for the chat history
func (r *StatusResult) GetContent() string {
	return r.String()
}

// StatusTool looks up the status of a previously sent fax.
type StatusTool struct {
	name        string
	description string
	funcParams  any

	client Client
}

var (
	_ tools.Tool[StatusRequest, StatusResult] = (*StatusTool)(nil)
	_ tools.MCPTool[StatusRequest]            = (*StatusTool)(nil)
)

func NewStatusTool(client Client) (*StatusTool, error) {
	sc, err := schema.New(reflect.TypeOf(StatusRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	tool := &StatusTool{
		name: StatusToolName,
		description: "Checks the status of a previously sent fax. " +
			"Input is a JSON object with fax_id.",
		funcParams: sc.Parameters,
		client:     client,
	}
	return tool, nil
}

// WithDescription sets the description of the tool, to be used in the prompt.
func (t *StatusTool) WithDescription(description string) *StatusTool {
	t.description = description
	return t
}

func (t *StatusTool) Name() string {
	return t.name
}

func (t *StatusTool) Description() string {
	return t.description
}

func (t *StatusTool) Parameters() any {
	return t.funcParams
}

// Run fetches the fax record. This is a pure pass-through, no caching:
// two calls for an unchanged record return the same values.
func (t *StatusTool) Run(ctx context.Context, req *StatusRequest) (*StatusResult, error) {
	if req.FaxID == "" {
		return nil, errors.WithStack(&ValidationError{msg: "Fax ID is required"})
	}

	record, err := t.client.GetFax(ctx, req.FaxID)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to get fax")
	}

	return &StatusResult{
		FaxID:     req.FaxID,
		Status:    record.Status,
		Completed: record.Completed,
		Cost:      record.Cost,
		PageCount: record.PageCount,
		CreatedAt: record.CreatedAt,
	}, nil
}

// Invoke parses the input and runs the tool, always producing a Result.
func (t *StatusTool) Invoke(ctx context.Context, input string) *Result {
	var req StatusRequest
	if err := json.Unmarshal(llmutils.CleanJSON([]byte(input)), &req); err != nil {
		return invalidJSONResult()
	}
	return t.invoke(ctx, &req)
}

func (t *StatusTool) invoke(ctx context.Context, req *StatusRequest) *Result {
	res, err := t.Run(ctx, req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return validationResult(verr.Error())
		}
		return remoteResult("Error checking fax status: %s", err)
	}
	return okResult(res.String())
}

func (t *StatusTool) Call(ctx context.Context, input string) (string, error) {
	return t.Invoke(ctx, input).String(), nil
}

func (t *StatusTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, t.RunMCP)
}

func (t *StatusTool) RunMCP(ctx context.Context, req *StatusRequest) (*mcp.ToolResponse, error) {
	res := t.invoke(ctx, req)
	return mcp.NewToolResponse(mcp.NewTextContent(res.String())), nil
}
