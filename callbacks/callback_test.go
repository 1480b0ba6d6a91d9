package callbacks_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/openfax/faxtools/callbacks"
	"github.com/openfax/faxtools/tools"
	"github.com/stretchr/testify/assert"
)

type namedTool struct {
	name string
}

func (t *namedTool) Name() string        { return t.name }
func (t *namedTool) Description() string { return "" }
func (t *namedTool) Parameters() any     { return nil }
func (t *namedTool) Call(_ context.Context, input string) (string, error) {
	return input, nil
}

func Test_Printer(t *testing.T) {
	var buf bytes.Buffer
	printer := callbacks.NewPrinter(&buf)

	ctx := context.Background()
	tool := &namedTool{name: "SendFax"}

	printer.OnToolStart(ctx, tool, `{"fax_number":"+12025550123"}`)
	printer.OnToolEnd(ctx, tool, `{"fax_number":"+12025550123"}`, "Fax successfully queued. Fax ID: fax_1")
	printer.OnToolError(ctx, tool, "{}", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "TOOL START: SendFax:")
	assert.Contains(t, out, "TOOL END: SendFax: Fax successfully queued. Fax ID: fax_1")
	assert.Contains(t, out, "TOOL ERROR: SendFax: boom")
}

func Test_Fanout(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	fanout := callbacks.NewFanout(callbacks.NewNoop(), callbacks.NewPrinter(&buf1))
	fanout.Add(callbacks.NewPrinter(&buf2))

	var _ tools.Callback = fanout

	ctx := context.Background()
	tool := &namedTool{name: "FaxStatus"}

	fanout.OnToolStart(ctx, tool, "{}")
	fanout.OnToolEnd(ctx, tool, "{}", "done")

	assert.Equal(t, buf1.String(), buf2.String())
	assert.Contains(t, buf1.String(), "TOOL END: FaxStatus: done")
}
