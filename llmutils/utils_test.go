package llmutils_test

import (
	"testing"

	"github.com/openfax/faxtools/llmutils"
	"github.com/stretchr/testify/assert"
)

func Test_CleanJSON(t *testing.T) {
	tcases := []struct {
		name string
		in   string
		exp  string
	}{
		{"plain", `{"fax_id":"f1"}`, `{"fax_id":"f1"}`},
		{"prefixed", `Sure, here you go: {"fax_id":"f1"}`, `{"fax_id":"f1"}`},
		{"suffixed", `{"fax_id":"f1"} Let me know if that helps.`, `{"fax_id":"f1"}`},
		{"array", `the list: [{"id":1}] done`, `[{"id":1}]`},
		{"no json", `not json at all`, `not json at all`},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, string(llmutils.CleanJSON([]byte(tc.in))))
		})
	}
}

func Test_TrimBackticks(t *testing.T) {
	in := "```json\n{\"limit\": 2}\n```"
	assert.Equal(t, `{"limit": 2}`, llmutils.TrimBackticks(in))

	// no markers
	assert.Equal(t, `{"limit": 2}`, llmutils.TrimBackticks(`{"limit": 2}`))
}

func Test_JSONHelpers(t *testing.T) {
	val := map[string]string{"status": "success"}
	assert.Equal(t, `{"status":"success"}`, llmutils.ToJSON(val))
	assert.Equal(t, "{\n\t\"status\": \"success\"\n}", llmutils.ToJSONIndent(val))
	assert.Equal(t, "status: success\n", llmutils.ToYAML(val))
	assert.Equal(t, "{\n\t\"status\": \"success\"\n}", llmutils.JSONIndent(`{"status":"success"}`))
	assert.Equal(t, "\n```json\n{}\n```\n", llmutils.BackticksJSON("{}"))
}

func Test_Stringify(t *testing.T) {
	assert.Equal(t, "text as is", llmutils.Stringify("text as is"))
	assert.Equal(t, "\n```json\n{\n\t\"a\": 1\n}\n```\n", llmutils.Stringify(map[string]int{"a": 1}))
}

func Test_EnsureEndsWithNewline(t *testing.T) {
	assert.Equal(t, "", llmutils.EnsureEndsWithNewline("  "))
	assert.Equal(t, "done\n", llmutils.EnsureEndsWithNewline("  done  "))
	assert.Equal(t, "done\n", llmutils.EnsureEndsWithNewline("done\n"))
}
