package gcedomain

import (
	"context"

	compute "google.golang.org/api/compute/v1"
)

type TemplateGetter interface {
	GetInstanceTemplate(ctx context.Context, opts *GetInstanceTemplateOptions) (*compute.InstanceTemplate, error)
}

type GetInstanceTemplateOptions struct {
	Project  string
	Template string
}

type TemplateInserter interface {
	InsertInstanceTemplate(ctx context.Context, opts *InsertInstanceTemplateOptions) (*compute.Operation, error)
}

type InsertInstanceTemplateOptions struct {
	Project  string
	Template *compute.InstanceTemplate
}

type TemplateDeleter interface {
	DeleteInstanceTemplate(ctx context.Context, opts *DeleteInstanceTemplateOptions) (*compute.Operation, error)
}

type DeleteInstanceTemplateOptions struct {
	Project  string
	Template string
}

type TemplateLister interface {
	ListInstanceTemplates(ctx context.Context, opts *ListInstanceTemplatesOptions) ([]*compute.InstanceTemplate, error)
}

type ListInstanceTemplatesOptions struct {
	Project string
}
