package gofile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
)

// UploadFile uploads a file to the configured upload host. folderID selects
// the destination folder; when empty the folder part is left out of the form
// entirely and the service picks (or creates) a folder itself.
func (c *Client) UploadFile(ctx context.Context, name string, contents io.Reader, folderID string) (*Item, error) {
	const op = "upload file"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := io.Copy(part, contents); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if folderID != "" {
		if err := writer.WriteField("folderId", folderID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return callMultipart[Item](ctx, c, op, c.uploadURL+"/contents/uploadfile", &buf, writer.FormDataContentType())
}
