package gcedomain

import (
	"context"
	"strings"
	"time"

	compute "google.golang.org/api/compute/v1"
)

// OperationStatusDone is the terminal status of a zone operation. The remote
// API never reports a later transition.
const OperationStatusDone = "DONE"

type OperationGetter interface {
	GetZoneOperation(ctx context.Context, opts *GetZoneOperationOptions) (*compute.Operation, error)
}

type GetZoneOperationOptions struct {
	Project   string
	Zone      string
	Operation string
}

type OperationWaiter interface {
	WaitForCompletion(ctx context.Context, opts *WaitForCompletionOptions) (*compute.OperationError, error)
}

type WaitForCompletionOptions struct {
	Project   string
	Zone      string
	Operation string
	Timeout   time.Duration
}

// IsOperationDone reports whether the operation reached its terminal status.
func IsOperationDone(op *compute.Operation) bool {
	return op != nil && op.Status == OperationStatusDone
}

// FormatOperationError flattens a terminal error payload into a single
// message string for wrapping into an error value.
func FormatOperationError(opErr *compute.OperationError) string {
	if opErr == nil || len(opErr.Errors) == 0 {
		return ""
	}
	messages := make([]string, 0, len(opErr.Errors))
	for _, entry := range opErr.Errors {
		if entry == nil {
			continue
		}
		if entry.Code != "" {
			messages = append(messages, entry.Code+": "+entry.Message)
			continue
		}
		messages = append(messages, entry.Message)
	}
	return strings.Join(messages, "; ")
}
