package snapshotcmd

import (
	"fmt"

	"github.com/graphite-platforms/gcp-client/cmd/gcectl/cliutil"
	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/spf13/cobra"
)

func NewGetSnapshotCmd() *cobra.Command {
	var (
		project  string
		snapshot string
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get snapshot details",
		RunE: func(cmd *cobra.Command, args []string) error {
			if snapshot == "" {
				return fmt.Errorf("--name is required")
			}

			cfg, err := cliutil.LoadConfig()
			if err != nil {
				return err
			}
			project, err := cliutil.ResolveProject(cfg, project)
			if err != nil {
				return err
			}

			client, err := cliutil.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			snap, err := client.Snapshots.GetSnapshot(cmd.Context(), &gcedomain.GetSnapshotOptions{
				Project:  project,
				Snapshot: snapshot,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "snapshot: name=%s, status=%s, disk_size_gb=%d, source_disk=%s\n",
				snap.Name, snap.Status, snap.DiskSizeGb, snap.SourceDisk)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&snapshot, "name", "", "Snapshot name")

	return cmd
}
