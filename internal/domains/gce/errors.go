package gcedomain

import "errors"

var (
	ErrInvalidArgument error = errors.New("invalid argument")
	ErrWaitTimeout     error = errors.New("timed out waiting for operation to complete")
	ErrOperationFailed error = errors.New("operation completed with errors")
	ErrStatusMismatch  error = errors.New("instance does not have the desired status")
)
