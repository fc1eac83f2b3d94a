// Package gceclient is the public entry point of the library. It assembles
// the Compute Engine gateway and the services on top of it behind a single
// Client value.
package gceclient

import (
	"context"
	"fmt"

	gcegw "github.com/graphite-platforms/gcp-client/internal/gateways/gce"
	catalogsrv "github.com/graphite-platforms/gcp-client/internal/services/catalog"
	instancesrv "github.com/graphite-platforms/gcp-client/internal/services/instances"
	opsrv "github.com/graphite-platforms/gcp-client/internal/services/operations"
	snapsrv "github.com/graphite-platforms/gcp-client/internal/services/snapshots"
	templatesrv "github.com/graphite-platforms/gcp-client/internal/services/templates"
	"go.uber.org/zap"
	compute "google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

// Client bundles the per-resource services sharing one Compute Engine
// connection. All services are safe for concurrent use.
type Client struct {
	Operations *opsrv.Service
	Snapshots  *snapsrv.Service
	Instances  *instancesrv.Service
	Catalog    *catalogsrv.Service
	Templates  *templatesrv.Service
}

// New dials the Compute Engine API and wires up the services. Credentials
// follow the usual Google application default resolution unless overridden
// through opts. A nil logger disables logging.
func New(ctx context.Context, log *zap.Logger, opts ...option.ClientOption) (*Client, error) {
	service, err := compute.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create compute service: %w", err)
	}
	return NewWithService(service, log)
}

// NewWithService builds a Client on top of an already constructed Compute
// Engine service, which tests and callers with custom transports can provide
// directly.
func NewWithService(service *compute.Service, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}

	gateway, err := gcegw.NewGateway(service)
	if err != nil {
		return nil, fmt.Errorf("create gateway: %w", err)
	}

	operations, err := opsrv.NewService(gateway, log.Named("operations"))
	if err != nil {
		return nil, fmt.Errorf("create operations service: %w", err)
	}

	snapshots, err := snapsrv.NewService(gateway, operations, log.Named("snapshots"))
	if err != nil {
		return nil, fmt.Errorf("create snapshots service: %w", err)
	}

	instances, err := instancesrv.NewService(gateway, operations, log.Named("instances"))
	if err != nil {
		return nil, fmt.Errorf("create instances service: %w", err)
	}

	catalog, err := catalogsrv.NewService(gateway, log.Named("catalog"))
	if err != nil {
		return nil, fmt.Errorf("create catalog service: %w", err)
	}

	templates, err := templatesrv.NewService(gateway, log.Named("templates"))
	if err != nil {
		return nil, fmt.Errorf("create templates service: %w", err)
	}

	return &Client{
		Operations: operations,
		Snapshots:  snapshots,
		Instances:  instances,
		Catalog:    catalog,
		Templates:  templates,
	}, nil
}
