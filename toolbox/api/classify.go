// Package api wraps remote calls behind a typed success/error boundary.
// Every transport outcome - success payload, structured error body, or
// thrown error - is classified into exactly one core.Result; nothing
// escapes the boundary as a raw error.
package api

import (
	"context"
	"errors"
	"net"
	"os"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/appoly/toolbox-go/toolbox/core"
)

const (
	msgNoInternet = "No Internet Connection"
	msgUnknown    = "Unknown error"
)

// CallFunc is the transport thunk: it performs one remote operation and
// returns the decoded envelope, or an error when no envelope could be
// obtained. A CallFunc is invoked exactly once per call; retry policy
// belongs to the caller.
type CallFunc[T any] func(ctx context.Context) (*Envelope[T], error)

// classify turns a transport outcome into exactly one Result. Failures
// are logged here, tagged with the caller-supplied description; success
// is silent.
func classify[T any](logger zerolog.Logger, desc string, env *Envelope[T], err error) core.Result[T] {
	if err == nil {
		if env == nil {
			logger.Error().Str("call", desc).Msg(msgUnknown)
			return core.Err[T](core.CodeUnclassified, msgUnknown, nil)
		}
		if env.Success && env.Data != nil {
			return core.Ok(*env.Data)
		}
		// Transport success but a logical failure: success=false or no payload.
		message := firstNonBlank(env.Message, msgUnknown)
		logger.Error().Str("call", desc).Int("status", env.Status).Msg(message)
		return core.Err[T](env.Status, message, nil)
	}

	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		message := firstNonBlank(statusErr.Message, err.Error(), msgUnknown)
		logger.Error().Str("call", desc).Int("status", statusErr.Code).Err(err).Msg(message)
		return core.Err[T](statusErr.Code, message, err)
	case isConnectivity(err):
		logger.Warn().Str("call", desc).Err(err).Msg(msgNoInternet)
		return core.Err[T](core.CodeUnclassified, msgNoInternet, err)
	default:
		message := firstNonBlank(err.Error(), msgUnknown)
		logger.Error().Str("call", desc).Err(err).Msg(message)
		return core.Err[T](core.CodeUnclassified, message, err)
	}
}

// isConnectivity reports whether err stems from the network rather than
// the server: DNS failures, refused or reset connections, unreachable
// hosts, and timeouts.
func isConnectivity(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.EHOSTUNREACH,
		syscall.ENETUNREACH,
		syscall.ETIMEDOUT,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}

func firstNonBlank(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}
