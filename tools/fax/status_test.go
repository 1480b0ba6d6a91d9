package fax_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/openfax/faxtools/llmutils"
	"github.com/openfax/faxtools/pkg/faxplus"
	"github.com/openfax/faxtools/tools/fax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_StatusTool(t *testing.T) {
	fs := newFakeService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/accounts/user1/outbox/mock_fax_id", r.URL.Path)

		_ = json.NewEncoder(w).Encode(faxplus.FaxRecord{
			ID:        "mock_fax_id",
			Status:    "success",
			Completed: true,
			Cost:      1,
			PageCount: 2,
			CreatedAt: "2023-01-01T12:00:00Z",
			Direction: faxplus.DirectionOutbound,
		})
	})

	tool, err := fax.NewStatusTool(fs.client)
	require.NoError(t, err)

	assert.Equal(t, fax.StatusToolName, tool.Name())
	assert.Contains(t, tool.Description(), "status")

	params := llmutils.ToJSONIndent(tool.Parameters())
	assert.Contains(t, params, `"fax_id"`)

	ctx := context.Background()

	out, err := tool.Call(ctx, `{"fax_id": "mock_fax_id"}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "success"`)
	assert.Contains(t, out, `"pagecount": 2`)
	assert.Contains(t, out, `"cost": 1`)
	assert.Contains(t, out, `"created_at": "2023-01-01T12:00:00Z"`)
	assert.Contains(t, out, `"completed": true`)

	// pure pass-through, no caching: a second call renders identically
	out2, err := tool.Call(ctx, `{"fax_id": "mock_fax_id"}`)
	require.NoError(t, err)
	assert.Equal(t, out, out2)
	assert.EqualValues(t, 2, fs.requests.Load())
}

func Test_StatusTool_Validation(t *testing.T) {
	fs := newFakeService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no remote call expected, got: %s", r.URL.Path)
	})

	tool, err := fax.NewStatusTool(fs.client)
	require.NoError(t, err)

	ctx := context.Background()

	out, err := tool.Call(ctx, `{}`)
	require.NoError(t, err)
	assert.Equal(t, "Error: Fax ID is required", out)

	res := tool.Invoke(ctx, `{}`)
	assert.False(t, res.OK)
	assert.Equal(t, fax.KindValidation, res.Kind)

	out, err = tool.Call(ctx, "not a json object")
	require.NoError(t, err)
	assert.Equal(t, "Error: Invalid JSON input. Please provide a valid JSON object.", out)

	assert.EqualValues(t, 0, fs.requests.Load())
}

func Test_StatusTool_RemoteError(t *testing.T) {
	fs := newFakeService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "fax not found"})
	})

	tool, err := fax.NewStatusTool(fs.client)
	require.NoError(t, err)

	res := tool.Invoke(context.Background(), `{"fax_id": "missing"}`)
	assert.False(t, res.OK)
	assert.Equal(t, fax.KindRemote, res.Kind)
	assert.Contains(t, res.String(), "Error checking fax status: ")
	assert.Contains(t, res.String(), "fax not found")
}
