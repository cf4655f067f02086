// Package netx builds request bodies for the HTTP transport.
package netx

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// FilePart is a binary part of a multipart form.
type FilePart struct {
	Field    string
	FileName string
	Data     []byte
}

// Form describes a multipart/form-data body. Fields keep insertion order so
// request bodies are reproducible in tests.
type Form struct {
	fields [][2]string
	files  []FilePart
}

func (f *Form) Field(name, value string) *Form {
	f.fields = append(f.fields, [2]string{name, value})
	return f
}

func (f *Form) File(field, fileName string, data []byte) *Form {
	f.files = append(f.files, FilePart{Field: field, FileName: fileName, Data: data})
	return f
}

// Encode renders the form and returns the body with its Content-Type,
// boundary included.
func (f *Form) Encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", kv[0], err)
		}
	}

	for _, p := range f.files {
		part, err := w.CreateFormFile(p.Field, p.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %s: %w", p.Field, err)
		}
		if _, err := part.Write(p.Data); err != nil {
			return nil, "", fmt.Errorf("write file part %s: %w", p.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
