// Package upload pushes files to object storage through backend-issued
// pre-signed URLs: one call to obtain the URL, then a progress-tracked
// PUT of the raw bytes. Failures at either step surface as a typed
// Result; there is no partial-failure recovery and no retry.
package upload

// Result is the outcome of an upload: Success carrying the remote file
// path, or Error carrying a message and optional cause.
type Result struct {
	path    string
	message string
	cause   error
	failed  bool
}

// Uploaded creates a successful Result carrying the remote path the
// backend assigned to the file.
func Uploaded(remotePath string) Result {
	return Result{path: remotePath}
}

// Failed creates a failed Result.
func Failed(message string, cause error) Result {
	return Result{message: message, cause: cause, failed: true}
}

// IsSuccess returns true if the upload completed.
func (r Result) IsSuccess() bool {
	return !r.failed
}

// IsError returns true if either upload step failed.
func (r Result) IsError() bool {
	return r.failed
}

// Path returns the remote file path. Only meaningful when IsSuccess()
// is true.
func (r Result) Path() string {
	return r.path
}

// Message returns the failure message, or "" for a successful Result.
func (r Result) Message() string {
	return r.message
}

// Cause returns the underlying error, if any.
func (r Result) Cause() error {
	return r.cause
}
