package snapshotcmd

import (
	"fmt"

	"github.com/graphite-platforms/gcp-client/cmd/gcectl/cliutil"
	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/spf13/cobra"
)

func NewDeleteSnapshotCmd() *cobra.Command {
	var (
		project  string
		snapshot string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a snapshot",
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

			op, err := client.Snapshots.DeleteSnapshot(cmd.Context(), &gcedomain.DeleteSnapshotOptions{
				Project:  project,
				Snapshot: snapshot,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "operation: name=%s, status=%s\n", op.Name, op.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&snapshot, "name", "", "Snapshot name")

	return cmd
}
