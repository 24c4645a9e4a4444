package adminsdk

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Form is a multipart request body for upload operations. The caller decides
// up front that a request carries multipart content by building a Form,
// rather than the SDK inferring it from field types at call time.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	key   string
	value string
}

type formFile struct {
	key      string
	filename string
	content  io.Reader
}

// NewForm returns an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// Set appends a plain text field.
func (f *Form) Set(key, value string) *Form {
	f.fields = append(f.fields, formField{key: key, value: value})
	return f
}

// AddFile appends a file part read from r at encode time.
func (f *Form) AddFile(key, filename string, r io.Reader) *Form {
	f.files = append(f.files, formFile{key: key, filename: filename, content: r})
	return f
}

// encode renders the form into a multipart body and returns it together with
// the matching Content-Type header value.
func (f *Form) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %q: %w", field.key, err)
		}
	}

	for _, file := range f.files {
		part, err := w.CreateFormFile(file.key, file.filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file %q: %w", file.key, err)
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return nil, "", fmt.Errorf("failed to copy form file %q: %w", file.key, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return buf, w.FormDataContentType(), nil
}
