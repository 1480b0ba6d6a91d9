package fax

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/cockroachdb/errors"
	mcp "github.com/metoro-io/mcp-golang"
	"github.com/openfax/faxtools/llmutils"
	"github.com/openfax/faxtools/pkg/faxplus"
	"github.com/openfax/faxtools/schema"
	"github.com/openfax/faxtools/tools"
)

const SendToolName = "SendFax"

// SendRequest represents the tool input.
type SendRequest struct {
	FaxNumber string `json:"fax_number" yaml:"fax_number" jsonschema:"title=Fax Number,description=The recipient's fax number in E.164 format (e.g. +14155552671)."`
	Subject   string `json:"subject" yaml:"subject" jsonschema:"title=Subject,description=Subject of the fax."`
	FilePath  string `json:"file_path" yaml:"file_path" jsonschema:"title=File Path,description=Path to the file to be faxed (PDF, TIFF, or other supported format)."`
	Comment   string `json:"comment,omitempty" yaml:"comment,omitempty" jsonschema:"title=Comment,description=Optional comment for the fax."`
}

// GetContent gets the content of the message for the chat history
func (r *SendRequest) GetContent() string {
	return llmutils.ToJSON(r)
}

// SendResult reports a successfully queued fax.
type SendResult struct {
	FaxID string `json:"fax_id"`
}

func (r *SendResult) String() string {
	return "Fax successfully queued. Fax ID: " + r.FaxID
}

// GetContent gets the content of the message for the chat history
func (r *SendResult) GetContent() string {
	return r.String()
}

// SendTool uploads a local file and submits it as an outbound fax.
type SendTool struct {
	name        string
	description string
	funcParams  any

	client Client
}

var (
	_ tools.Tool[SendRequest, SendResult] = (*SendTool)(nil)
	_ tools.MCPTool[SendRequest]          = (*SendTool)(nil)
)

func NewSendTool(client Client) (*SendTool, error) {
	sc, err := schema.New(reflect.TypeOf(SendRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	tool := &SendTool{
		name: SendToolName,
		description: "Sends a fax to a specified fax number. " +
			"Input is a JSON object with fax_number (E.164 format), subject, file_path, and an optional comment.",
		funcParams: sc.Parameters,
		client:     client,
	}
	return tool, nil
}

// WithDescription sets the description of the tool, to be used in the prompt.
func (t *SendTool) WithDescription(description string) *SendTool {
	t.description = description
	return t
}

func (t *SendTool) Name() string {
	return t.name
}

func (t *SendTool) Description() string {
	return t.description
}

func (t *SendTool) Parameters() any {
	return t.funcParams
}

// Run validates the request, uploads the file and submits the fax.
// Validation failures are returned as *ValidationError before any
// remote call is made.
func (t *SendTool) Run(ctx context.Context, req *SendRequest) (*SendResult, error) {
	if req.FaxNumber == "" {
		return nil, errors.WithStack(&ValidationError{msg: "Recipient fax number is required"})
	}
	if req.Subject == "" {
		return nil, errors.WithStack(&ValidationError{msg: "Subject is required"})
	}
	if req.FilePath == "" {
		return nil, errors.WithStack(&ValidationError{msg: "File path is required"})
	}
	if _, err := os.Stat(req.FilePath); err != nil {
		return nil, errors.WithStack(&ValidationError{msg: fmt.Sprintf("File not found at %s", req.FilePath)})
	}

	content, err := os.ReadFile(req.FilePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}

	fileName := filepath.Base(req.FilePath)
	uploaded, err := t.client.UploadFile(ctx, fileName, ContentTypeForFile(fileName), content)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to upload file")
	}

	sent, err := t.client.SendFax(ctx, &faxplus.OutboxPayload{
		Fax: faxplus.OutboxFax{
			To:        req.FaxNumber,
			Subject:   req.Subject,
			Comment:   req.Comment,
			FileID:    uploaded.ID,
			Direction: faxplus.DirectionOutbound,
			Category:  faxplus.CategoryGeneral,
		},
	})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to submit fax")
	}

	return &SendResult{FaxID: sent.ID}, nil
}

// Invoke parses the input and runs the tool, always producing a Result.
func (t *SendTool) Invoke(ctx context.Context, input string) *Result {
	var req SendRequest
	if err := json.Unmarshal(llmutils.CleanJSON([]byte(input)), &req); err != nil {
		return invalidJSONResult()
	}
	return t.invoke(ctx, &req)
}

func (t *SendTool) invoke(ctx context.Context, req *SendRequest) *Result {
	res, err := t.Run(ctx, req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return validationResult(verr.Error())
		}
		return remoteResult("Error sending fax: %s", err)
	}
	return okResult(res.String())
}

func (t *SendTool) Call(ctx context.Context, input string) (string, error) {
	return t.Invoke(ctx, input).String(), nil
}

func (t *SendTool) RegisterMCP(registrator tools.McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, t.RunMCP)
}

func (t *SendTool) RunMCP(ctx context.Context, req *SendRequest) (*mcp.ToolResponse, error) {
	res := t.invoke(ctx, req)
	return mcp.NewToolResponse(mcp.NewTextContent(res.String())), nil
}
