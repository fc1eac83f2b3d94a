package main

import (
	"context"
	"os/signal"
	"syscall"

	catalogcmd "github.com/graphite-platforms/gcp-client/cmd/gcectl/catalog"
	instancecmd "github.com/graphite-platforms/gcp-client/cmd/gcectl/instances"
	snapshotcmd "github.com/graphite-platforms/gcp-client/cmd/gcectl/snapshots"
	templatecmd "github.com/graphite-platforms/gcp-client/cmd/gcectl/templates"
	errorutils "github.com/graphite-platforms/gcp-client/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "gcectl",
		Short: "Tool for Compute Engine resource management",
		Long:  "Tool for managing Compute Engine instances, snapshots, templates, and browsing the resource catalog.",
	}

	rootCmd.AddCommand(
		catalogcmd.NewCatalogGroup(),
		instancecmd.NewInstancesGroup(),
		snapshotcmd.NewSnapshotsGroup(),
		templatecmd.NewTemplatesGroup(),
	)

	errorutils.Try(rootCmd.ExecuteContext(ctx))
}
