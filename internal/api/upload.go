// ABOUTME: Multipart POST /upload streaming staged files through an io.Pipe
// ABOUTME: The action field tells the server whether to reset, clear or keep the conversation

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
)

// UploadAction selects what the server does with the conversation.
type UploadAction string

const (
	// ActionUpload replaces the document and starts a fresh conversation.
	ActionUpload UploadAction = "upload"
	// ActionClear replaces the document and clears the conversation.
	ActionClear UploadAction = "clear"
	// ActionKeep replaces the document and keeps the conversation.
	ActionKeep UploadAction = "keep"
)

// ParseUploadAction maps user input to an action; "" means ActionUpload.
func ParseUploadAction(s string) (UploadAction, error) {
	switch UploadAction(s) {
	case "", ActionUpload:
		return ActionUpload, nil
	case ActionClear, ActionKeep:
		return UploadAction(s), nil
	default:
		return "", fmt.Errorf("unknown upload action %q (want upload, clear or keep)", s)
	}
}

// UploadFile is one file part.
type UploadFile struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileFromPath returns an UploadFile reading path, sent under name.
func FileFromPath(name, path string) UploadFile {
	return UploadFile{
		Name: name,
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// Upload sends files as "file" parts plus the action field. A response
// carrying an "error" field is returned as *ServerError.
func (c *Client) Upload(ctx context.Context, files []UploadFile, action UploadAction) (*UploadResponse, error) {
	if len(files) == 0 {
		return nil, errors.New("upload: no files")
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeParts(mw, files, action))
	}()

	resp, err := c.do(ctx, http.MethodPost, "/upload", mw.FormDataContentType(), pr)
	if err != nil {
		pr.CloseWithError(err)
		return nil, err
	}
	var out UploadResponse
	if err := decode(resp, &out); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	if out.Error != "" {
		return &out, &ServerError{Message: out.Error}
	}
	return &out, nil
}

func writeParts(mw *multipart.Writer, files []UploadFile, action UploadAction) error {
	for _, f := range files {
		if err := writeFilePart(mw, f); err != nil {
			return err
		}
	}
	if err := mw.WriteField("action", string(action)); err != nil {
		return fmt.Errorf("writing action field: %w", err)
	}
	return mw.Close()
}

func writeFilePart(mw *multipart.Writer, f UploadFile) error {
	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer src.Close()

	part, err := mw.CreateFormFile("file", f.Name)
	if err != nil {
		return fmt.Errorf("creating part for %s: %w", f.Name, err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("copying %s: %w", f.Name, err)
	}
	return nil
}
