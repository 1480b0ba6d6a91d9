package fax_test

import (
	"testing"

	"github.com/openfax/faxtools/tools/fax"
	"github.com/stretchr/testify/assert"
)

func Test_ContentTypeForFile(t *testing.T) {
	tcases := []struct {
		name string
		exp  string
	}{
		{"invoice.pdf", "application/pdf"},
		{"scan.tiff", "image/tiff"},
		{"scan.tif", "image/tiff"},
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"chart.png", "image/png"},
		{"letter.doc", "application/msword"},
		{"letter.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"notes.txt", "text/plain"},
		// case-insensitive extension
		{"INVOICE.PDF", "application/pdf"},
		// unrecognized extensions fall back to octet-stream
		{"archive.zip", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, fax.ContentTypeForFile(tc.name))
		})
	}
}
