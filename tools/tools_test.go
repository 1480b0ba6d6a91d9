package tools_test

import (
	"context"
	"testing"

	"github.com/openfax/faxtools/tools"
	"github.com/stretchr/testify/assert"
)

type staticTool struct {
	name        string
	description string
}

func (t *staticTool) Name() string        { return t.name }
func (t *staticTool) Description() string { return t.description }
func (t *staticTool) Parameters() any     { return nil }
func (t *staticTool) Call(_ context.Context, input string) (string, error) {
	return input, nil
}

func Test_GetDescriptions(t *testing.T) {
	exp := "\n```json\n{\n\t\"Tools\": [\n\t\t{\n\t\t\t\"Name\": \"SendFax\",\n\t\t\t\"Description\": \"Sends a fax.\"\n\t\t},\n\t\t{\n\t\t\t\"Name\": \"FaxStatus\",\n\t\t\t\"Description\": \"Checks fax status.\"\n\t\t}\n\t]\n}\n```\n"
	res := tools.GetDescriptions(
		&staticTool{name: "SendFax", description: "Sends a fax."},
		&staticTool{name: "FaxStatus", description: "Checks fax status."},
	)
	assert.Equal(t, exp, res)
}
