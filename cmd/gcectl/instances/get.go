package instancecmd

import (
	"fmt"

	"github.com/graphite-platforms/gcp-client/cmd/gcectl/cliutil"
	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/spf13/cobra"
)

func NewGetInstanceCmd() *cobra.Command {
	var (
		project  string
		zone     string
		instance string
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get instance details",
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

			inst, err := client.Instances.GetInstance(cmd.Context(), &gcedomain.GetInstanceOptions{
				Project:  project,
				Zone:     zone,
				Instance: instance,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"instance: name=%s, status=%s, machine_type=%s, disks=%d\n",
				inst.Name, inst.Status, inst.MachineType, len(inst.Disks))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&zone, "zone", "", "Zone name or self link")
	cmd.Flags().StringVar(&instance, "name", "", "Instance name")

	return cmd
}
