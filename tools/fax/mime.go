package fax

import (
	"path/filepath"
	"strings"
)

const defaultContentType = "application/octet-stream"

var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

// ContentTypeForFile returns the MIME type for the file's extension,
// compared case-insensitively. Unrecognized extensions map to
// application/octet-stream.
func ContentTypeForFile(name string) string {
	if mt, ok := mimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	return defaultContentType
}
