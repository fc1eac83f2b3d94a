package templatesrv_test

import (
	"context"
	"errors"
	"testing"

	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	templatesrv "github.com/graphite-platforms/gcp-client/internal/services/templates"
	"github.com/graphite-platforms/gcp-client/internal/services/templates/mocks"
	sliceutils "github.com/graphite-platforms/gcp-client/pkg/slices"
	"github.com/stretchr/testify/require"
	compute "google.golang.org/api/compute/v1"
)

func newService(t *testing.T) (*templatesrv.Service, *mocks.TemplateGateway) {
	t.Helper()
	gateway := mocks.NewTemplateGateway(t)
	svc, err := templatesrv.NewService(gateway, nil)
	require.NoError(t, err)
	return svc, gateway
}

func TestNewService(t *testing.T) {
	t.Run("error: nil gateway", func(t *testing.T) {
		svc, err := templatesrv.NewService(nil, nil)
		require.Error(t, err)
		require.Nil(t, svc)
	})
}

func TestService_GetTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty template", func(t *testing.T) {
		svc, _ := newService(t)
		template, err := svc.GetTemplate(ctx, &gcedomain.GetInstanceTemplateOptions{Project: "p"})
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
		require.Nil(t, template)
	})

	t.Run("ok: delegates", func(t *testing.T) {
		svc, gateway := newService(t)

		opts := &gcedomain.GetInstanceTemplateOptions{Project: "p", Template: "tmpl-1"}
		want := &compute.InstanceTemplate{Name: "tmpl-1"}
		gateway.EXPECT().GetInstanceTemplate(ctx, opts).Return(want, nil).Once()

		template, err := svc.GetTemplate(ctx, opts)
		require.NoError(t, err)
		require.Equal(t, want, template)
	})
}

func TestService_InsertTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("error: template without name", func(t *testing.T) {
		svc, _ := newService(t)
		op, err := svc.InsertTemplate(ctx, &gcedomain.InsertInstanceTemplateOptions{
			Project:  "p",
			Template: &compute.InstanceTemplate{},
		})
		require.ErrorIs(t, err, gcedomain.ErrInvalidArgument)
		require.Nil(t, op)
	})

	t.Run("ok: returns the operation without waiting", func(t *testing.T) {
		svc, gateway := newService(t)

		opts := &gcedomain.InsertInstanceTemplateOptions{
			Project:  "p",
			Template: &compute.InstanceTemplate{Name: "tmpl-1"},
		}
		wantOp := &compute.Operation{Name: "op-insert", Status: "RUNNING"}
		gateway.EXPECT().InsertInstanceTemplate(ctx, opts).Return(wantOp, nil).Once()

		op, err := svc.InsertTemplate(ctx, opts)
		require.NoError(t, err)
		require.Equal(t, wantOp, op)
	})
}

func TestService_DeleteTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("error: gateway failure passed through", func(t *testing.T) {
		svc, gateway := newService(t)

		wantErr := errors.New("template in use")
		opts := &gcedomain.DeleteInstanceTemplateOptions{Project: "p", Template: "tmpl-1"}
		gateway.EXPECT().DeleteInstanceTemplate(ctx, opts).Return(nil, wantErr).Once()

		op, err := svc.DeleteTemplate(ctx, opts)
		require.ErrorIs(t, err, wantErr)
		require.Nil(t, op)
	})
}

func TestService_ListTemplates(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: sorted by name", func(t *testing.T) {
		svc, gateway := newService(t)

		opts := &gcedomain.ListInstanceTemplatesOptions{Project: "p"}
		gateway.EXPECT().
			ListInstanceTemplates(ctx, opts).
			Return([]*compute.InstanceTemplate{{Name: "web"}, {Name: "batch"}}, nil).
			Once()

		templates, err := svc.ListTemplates(ctx, opts)
		require.NoError(t, err)
		require.Equal(t, []string{"batch", "web"},
			sliceutils.Map(templates, func(tmpl *compute.InstanceTemplate) string { return tmpl.Name }))
	})
}
