package faxplus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
)

// UploadFile uploads a document and returns its file handle.
func (c *Client) UploadFile(ctx context.Context, filename, contentType string, data []byte) (*UploadedFile, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="fax_file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, errors.Wrap(err, "create multipart body")
	}
	if _, err := part.Write(data); err != nil {
		return nil, errors.Wrap(err, "write multipart body")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "close multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL("/accounts/%s/files", c.cfg.UserID), &buf)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var res UploadedFile
	if err := c.do(req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendFax submits a fax referencing a previously uploaded file.
func (c *Client) SendFax(ctx context.Context, payload *OutboxPayload) (*Fax, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL("/accounts/%s/outbox", c.cfg.UserID), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	var res Fax
	if err := c.do(req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetFax returns the record of a previously submitted fax.
func (c *Client) GetFax(ctx context.Context, faxID string) (*FaxRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL("/accounts/%s/outbox/%s", c.cfg.UserID, faxID), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	var res FaxRecord
	if err := c.do(req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListFaxes returns up to limit fax records, most recent first.
// A non-positive limit uses the service default.
func (c *Client) ListFaxes(ctx context.Context, limit int) ([]*FaxRecord, error) {
	u := c.buildURL("/accounts/%s/faxes", c.cfg.UserID)
	if limit > 0 {
		u += "?limit=" + strconv.Itoa(limit)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	var res FaxList
	if err := c.do(req, &res); err != nil {
		return nil, err
	}
	return res.Records, nil
}

func (c *Client) buildURL(format string, args ...any) string {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = url.PathEscape(fmt.Sprint(a))
	}
	return c.baseURL + fmt.Sprintf(format, escaped...)
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body)
		var apiErr errorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			return errors.Errorf("API returned unexpected status code: %d: %s", resp.StatusCode, apiErr.Message)
		}
		return errors.Errorf("API returned unexpected status code: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, "failed to decode response")
		}
	}
	return nil
}
