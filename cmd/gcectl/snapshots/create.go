package snapshotcmd

import (
	"fmt"

	"github.com/graphite-platforms/gcp-client/cmd/gcectl/cliutil"
	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/spf13/cobra"
)

func NewCreateSnapshotCmd() *cobra.Command {
	var (
		project  string
		zone     string
		instance string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Snapshot every disk attached to an instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if zone == "" || instance == "" {
				return fmt.Errorf("--zone and --instance are required")
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

			err = client.Snapshots.CreateSnapshot(cmd.Context(), &gcedomain.CreateSnapshotOptions{
				Project:  project,
				Zone:     zone,
				Instance: instance,
				Timeout:  cfg.Timeout,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "snapshots created: instance=%s\n", instance)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&zone, "zone", "", "Zone name or self link")
	cmd.Flags().StringVar(&instance, "instance", "", "Instance name")

	return cmd
}
