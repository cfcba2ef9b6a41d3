package upload

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/appoly/toolbox-go/toolbox/api"
	"github.com/appoly/toolbox-go/toolbox/core"
)

// PresignedURL is the backend's authorization to upload one file
// directly to object storage.
type PresignedURL struct {
	FilePath string         `json:"file_path"`
	URL      string         `json:"presigned_url"`
	Headers  PresignHeaders `json:"headers"`
}

// PresignHeaders are the headers the storage provider expects on the
// subsequent PUT; they are part of the signature and must be sent
// exactly as issued.
type PresignHeaders struct {
	Host        string `json:"Host"`
	ACL         string `json:"x-amz-acl"`
	ContentType string `json:"Content-Type"`
}

// presignBody is the request body for the generate-pre-signed-URL
// endpoint.
type presignBody struct {
	FileName string `json:"file_name"`
}

// fetchPresignedURL asks the backend for an upload authorization,
// classified like any other API call.
func (u *Uploader) fetchPresignedURL(ctx context.Context, logger zerolog.Logger, req Request) core.Result[PresignedURL] {
	return api.Call(ctx, logger, "generate pre-signed URL", func(ctx context.Context) (*api.Envelope[PresignedURL], error) {
		return api.PostJSON[PresignedURL](ctx, u.client(), req.Endpoint,
			presignBody{FileName: req.FileName}, api.BearerHeader(req.Token))
	})
}
