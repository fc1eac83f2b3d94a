package opsrv

import (
	"context"
	"errors"
	"fmt"
	"time"

	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/graphite-platforms/gcp-client/pkg/gcputils"
	"go.uber.org/zap"
	compute "google.golang.org/api/compute/v1"
)

const defaultPollInterval = 5 * time.Second

//go:generate mockery --name OperationGateway --output ./mocks --outpkg mocks --with-expecter --filename operation_gateway.go
type OperationGateway interface {
	gcedomain.OperationGetter
}

// Service blocks callers until a zone operation reaches its terminal status.
// The wait loop issues one status query per poll interval against a deadline;
// a failed query only costs that interval, it never aborts the wait.
type Service struct {
	operationGateway OperationGateway
	log              *zap.Logger
	pollInterval     time.Duration
}

type Option func(*Service)

// WithPollInterval overrides the interval between status queries.
func WithPollInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.pollInterval = interval
		}
	}
}

func NewService(operationGateway OperationGateway, log *zap.Logger, opts ...Option) (*Service, error) {
	if operationGateway == nil {
		return nil, errors.New("operation gateway is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Service{
		operationGateway: operationGateway,
		log:              log,
		pollInterval:     defaultPollInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// WaitForCompletion polls the named operation until it reports DONE or the
// timeout elapses. On completion it returns the operation's error payload; a
// nil payload means the operation succeeded. Exceeding the timeout returns
// ErrWaitTimeout and the remote operation keeps running, this call never
// cancels it.
func (s *Service) WaitForCompletion(ctx context.Context, opts *gcedomain.WaitForCompletionOptions) (*compute.OperationError, error) {
	if opts == nil {
		return nil, fmt.Errorf("%w: options are required", gcedomain.ErrInvalidArgument)
	}
	if opts.Project == "" || opts.Zone == "" || opts.Operation == "" {
		return nil, fmt.Errorf("%w: project, zone and operation are required", gcedomain.ErrInvalidArgument)
	}
	if opts.Timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", gcedomain.ErrInvalidArgument)
	}

	waitCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	getOpts := &gcedomain.GetZoneOperationOptions{
		Project:   opts.Project,
		Zone:      gcputils.NameFromSelfLink(opts.Zone),
		Operation: opts.Operation,
	}

	for {
		op, err := s.operationGateway.GetZoneOperation(waitCtx, getOpts)
		switch {
		case err != nil:
			// A failed poll is "not done yet": skip this interval and keep
			// waiting until the deadline.
			s.log.Warn("polling operation failed",
				zap.String("operation", getOpts.Operation),
				zap.Error(err),
			)
		case gcedomain.IsOperationDone(op):
			return op.Error, nil
		}

		select {
		case <-waitCtx.Done():
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: operation %s after %s",
				gcedomain.ErrWaitTimeout, getOpts.Operation, opts.Timeout)
		case <-ticker.C:
		}
	}
}

// WaitForOperation waits on an operation handle returned by a mutating call,
// deriving zone and name from the handle itself.
func (s *Service) WaitForOperation(ctx context.Context, project string, op *compute.Operation, timeout time.Duration) (*compute.OperationError, error) {
	if op == nil {
		return nil, fmt.Errorf("%w: operation is required", gcedomain.ErrInvalidArgument)
	}
	return s.WaitForCompletion(ctx, &gcedomain.WaitForCompletionOptions{
		Project:   project,
		Zone:      op.Zone,
		Operation: op.Name,
		Timeout:   timeout,
	})
}
