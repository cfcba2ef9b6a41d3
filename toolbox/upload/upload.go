package upload

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/appoly/toolbox-go/toolbox/core"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Request describes one upload: where to ask for the pre-signed URL and
// what to send.
type Request struct {
	// Endpoint is the backend URL that issues pre-signed URLs.
	Endpoint string `validate:"required,url"`

	// FileName is the name submitted to the backend; the backend
	// decides the remote path.
	FileName string `validate:"required"`

	// Token is an optional bearer token for the presign request.
	Token string

	// Body supplies the file bytes for the PUT.
	Body io.Reader `validate:"required"`

	// Size is the byte length of Body. Required for accurate progress;
	// zero means unknown and progress reports only completion.
	Size int64 `validate:"gte=0"`
}

// Uploader performs pre-signed uploads. The zero value is usable and
// uses http.DefaultClient with no logging.
type Uploader struct {
	// Client overrides the HTTP client used for both steps.
	Client *http.Client

	// Logger receives failure classification logs.
	Logger zerolog.Logger
}

func (u *Uploader) client() *http.Client {
	if u.Client != nil {
		return u.Client
	}
	return http.DefaultClient
}

// Upload runs the two-step flow: fetch a pre-signed URL, then PUT the
// file bytes to it with the issued headers, publishing progress after
// every chunk. The first failing step short-circuits into the returned
// Result; the progress callback may be nil.
func (u *Uploader) Upload(ctx context.Context, req Request, progress ProgressFunc) Result {
	if err := validate.Struct(req); err != nil {
		return Failed("invalid upload request", err)
	}

	presign := u.fetchPresignedURL(ctx, u.Logger, req)
	if presign.IsError() {
		return Failed(presign.Err().Message, presign.Err().Cause)
	}

	if err := u.put(ctx, presign.Value(), req, progress); err != nil {
		u.Logger.Error().Str("call", "upload file").Err(err).Msg("upload failed")
		return Failed(err.Error(), err)
	}
	return Uploaded(presign.Value().FilePath)
}

// put streams the body to the pre-signed URL with the issued headers.
func (u *Uploader) put(ctx context.Context, presign PresignedURL, req Request, progress ProgressFunc) error {
	body := newProgressReader(req.Body, req.Size, progress)

	putReq, err := http.NewRequestWithContext(ctx, http.MethodPut, presign.URL, body)
	if err != nil {
		return fmt.Errorf("create upload request: %w", err)
	}
	putReq.ContentLength = req.Size
	if presign.Headers.Host != "" {
		putReq.Host = presign.Headers.Host
	}
	if presign.Headers.ACL != "" {
		putReq.Header.Set("x-amz-acl", presign.Headers.ACL)
	}
	if presign.Headers.ContentType != "" {
		putReq.Header.Set("Content-Type", presign.Headers.ContentType)
	}

	resp, err := u.client().Do(putReq)
	if err != nil {
		return fmt.Errorf("upload file: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("upload rejected with status %d", resp.StatusCode)
	}
	return nil
}

// UploadFile is a convenience wrapper that uploads a file from disk,
// deriving FileName from the path.
func (u *Uploader) UploadFile(ctx context.Context, endpoint, path, token string, progress ProgressFunc) Result {
	f, err := os.Open(path)
	if err != nil {
		return Failed(fmt.Sprintf("open %s", path), err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Failed(fmt.Sprintf("stat %s", path), err)
	}

	return u.Upload(ctx, Request{
		Endpoint: endpoint,
		FileName: filepath.Base(path),
		Token:    token,
		Body:     f,
		Size:     info.Size(),
	}, progress)
}

// UploadThen composes a follow-up call on a completed upload: the
// continuation receives the remote path and its classified Result
// becomes the overall result. An upload failure never invokes the
// continuation; it is forwarded as an error Result instead.
func UploadThen[T any](ctx context.Context, u *Uploader, req Request, progress ProgressFunc, then func(ctx context.Context, remotePath string) core.Result[T]) core.Result[T] {
	res := u.Upload(ctx, req, progress)
	if res.IsError() {
		return core.Err[T](core.CodeUnclassified, res.Message(), res.Cause())
	}
	return then(ctx, res.Path())
}
