// Package channel dispatches named method calls to the battery accessor, the
// way app frameworks talk to platform plugins. A call either succeeds with a
// value, fails with a coded error, or is not implemented.
package channel

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battinfo/pkg/accessor"
	"github.com/charlie0129/battinfo/pkg/powerinfo"
)

// Method names.
const (
	MethodGetPlatformVersion = "getPlatformVersion"
	MethodGetBatteryLevel    = "getBatteryLevel"
	MethodIsCharging         = "isCharging"
	MethodGetBatteryState    = "getBatteryState"
)

// Error codes.
const (
	CodeUnavailable = "UNAVAILABLE"
)

// Call is an incoming method call.
type Call struct {
	Method    string         `json:"method"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Error is a coded failure returned to the caller.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Result is the outcome of a call. Exactly one of Value, Error or
// NotImplemented is meaningful.
type Result struct {
	Value          any    `json:"value,omitempty"`
	Error          *Error `json:"error,omitempty"`
	NotImplemented bool   `json:"notImplemented,omitempty"`
}

// Success returns a successful result.
func Success(v any) Result {
	return Result{Value: v}
}

// Failure returns a coded error result.
func Failure(code, message string) Result {
	return Result{Error: &Error{Code: code, Message: message}}
}

// NotImplemented is the result of an unknown method.
func NotImplemented() Result {
	return Result{NotImplemented: true}
}

// Handler answers method calls from an accessor.
type Handler struct {
	acc      *accessor.Accessor
	platform func() string
}

// NewHandler returns a Handler. platform reports the OS name and version for
// getPlatformVersion.
func NewHandler(acc *accessor.Accessor, platform func() string) *Handler {
	return &Handler{acc: acc, platform: platform}
}

// Handle dispatches call.
func (h *Handler) Handle(ctx context.Context, call Call) Result {
	logrus.WithField("method", call.Method).Debug("handling method call")

	switch call.Method {
	case MethodGetPlatformVersion:
		return Success(h.platform())
	case MethodGetBatteryLevel:
		level := h.acc.Snapshot(ctx).EncodeLevel()
		if level == powerinfo.LevelUnavailable {
			return Failure(CodeUnavailable, "Battery level not available.")
		}
		return Success(level)
	case MethodIsCharging:
		return Success(h.acc.Snapshot(ctx).EncodeCharging() == powerinfo.ChargingTrue)
	case MethodGetBatteryState:
		return Success(h.acc.Snapshot(ctx).EncodeState())
	default:
		return NotImplemented()
	}
}
