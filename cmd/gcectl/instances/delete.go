package instancecmd

import (
	"fmt"

	"github.com/graphite-platforms/gcp-client/cmd/gcectl/cliutil"
	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/spf13/cobra"
)

func NewDeleteInstanceCmd() *cobra.Command {
	var (
		project  string
		zone     string
		instance string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if zone == "" || instance == "" {
				return fmt.Errorf("--zone and --name are required")
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

			if status != "" {
				op, err := client.Instances.TerminateInstanceWithStatus(cmd.Context(), &gcedomain.DeleteInstanceWithStatusOptions{
					Project:       project,
					Zone:          zone,
					Instance:      instance,
					DesiredStatus: status,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "operation: name=%s, status=%s\n", op.Name, op.Status)
				return nil
			}

			op, err := client.Instances.TerminateInstance(cmd.Context(), &gcedomain.DeleteInstanceOptions{
				Project:  project,
				Zone:     zone,
				Instance: instance,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "operation: name=%s, status=%s\n", op.Name, op.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&zone, "zone", "", "Zone name or self link")
	cmd.Flags().StringVar(&instance, "name", "", "Instance name")
	cmd.Flags().StringVar(&status, "status", "", "Only delete while the instance has this status")

	return cmd
}
