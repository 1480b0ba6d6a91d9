// Package fax exposes the Fax.Plus operations as agent tools:
// sending a fax, checking the status of a sent fax, and listing
// the fax history. Every tool invocation terminates in exactly one
// plain-text result; validation and remote failures are rendered
// into the result instead of propagating.
package fax

import (
	"context"

	"github.com/openfax/faxtools/pkg/faxplus"
)

// Client is the remote fax service surface the tools consume.
// It is satisfied by *faxplus.Client and injected at construction,
// so the tools hold no deferred initialization state.
type Client interface {
	UploadFile(ctx context.Context, filename, contentType string, data []byte) (*faxplus.UploadedFile, error)
	SendFax(ctx context.Context, payload *faxplus.OutboxPayload) (*faxplus.Fax, error)
	GetFax(ctx context.Context, faxID string) (*faxplus.FaxRecord, error)
	ListFaxes(ctx context.Context, limit int) ([]*faxplus.FaxRecord, error)
}

var _ Client = (*faxplus.Client)(nil)

// New returns all three fax tools sharing the same client.
func New(client Client) (*SendTool, *StatusTool, *HistoryTool, error) {
	sendTool, err := NewSendTool(client)
	if err != nil {
		return nil, nil, nil, err
	}
	statusTool, err := NewStatusTool(client)
	if err != nil {
		return nil, nil, nil, err
	}
	historyTool, err := NewHistoryTool(client)
	if err != nil {
		return nil, nil, nil, err
	}
	return sendTool, statusTool, historyTool, nil
}
