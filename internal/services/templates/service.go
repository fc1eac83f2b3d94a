package templatesrv

import (
	"context"
	"errors"
	"fmt"

	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	sliceutils "github.com/graphite-platforms/gcp-client/pkg/slices"
	"go.uber.org/zap"
	compute "google.golang.org/api/compute/v1"
)

//go:generate mockery --name TemplateGateway --output ./mocks --outpkg mocks --with-expecter --filename template_gateway.go
type TemplateGateway interface {
	gcedomain.TemplateGetter
	gcedomain.TemplateInserter
	gcedomain.TemplateDeleter
	gcedomain.TemplateLister
}

// Service manages global instance templates. Mutations return the remote
// operation without waiting on it.
type Service struct {
	templateGateway TemplateGateway
	log             *zap.Logger
}

func NewService(templateGateway TemplateGateway, log *zap.Logger) (*Service, error) {
	if templateGateway == nil {
		return nil, errors.New("template gateway is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		templateGateway: templateGateway,
		log:             log,
	}, nil
}

func (s *Service) GetTemplate(ctx context.Context, opts *gcedomain.GetInstanceTemplateOptions) (*compute.InstanceTemplate, error) {
	if opts == nil || opts.Project == "" || opts.Template == "" {
		return nil, fmt.Errorf("%w: project and template are required", gcedomain.ErrInvalidArgument)
	}
	return s.templateGateway.GetInstanceTemplate(ctx, opts)
}

func (s *Service) InsertTemplate(ctx context.Context, opts *gcedomain.InsertInstanceTemplateOptions) (*compute.Operation, error) {
	if opts == nil || opts.Project == "" {
		return nil, fmt.Errorf("%w: project is required", gcedomain.ErrInvalidArgument)
	}
	if opts.Template == nil || opts.Template.Name == "" {
		return nil, fmt.Errorf("%w: template with a name is required", gcedomain.ErrInvalidArgument)
	}
	return s.templateGateway.InsertInstanceTemplate(ctx, opts)
}

func (s *Service) DeleteTemplate(ctx context.Context, opts *gcedomain.DeleteInstanceTemplateOptions) (*compute.Operation, error) {
	if opts == nil || opts.Project == "" || opts.Template == "" {
		return nil, fmt.Errorf("%w: project and template are required", gcedomain.ErrInvalidArgument)
	}
	return s.templateGateway.DeleteInstanceTemplate(ctx, opts)
}

func (s *Service) ListTemplates(ctx context.Context, opts *gcedomain.ListInstanceTemplatesOptions) ([]*compute.InstanceTemplate, error) {
	if opts == nil || opts.Project == "" {
		return nil, fmt.Errorf("%w: project is required", gcedomain.ErrInvalidArgument)
	}

	templates, err := s.templateGateway.ListInstanceTemplates(ctx, opts)
	if err != nil {
		return nil, err
	}
	return sliceutils.SortedBy(templates, func(t *compute.InstanceTemplate) string { return t.Name }), nil
}
