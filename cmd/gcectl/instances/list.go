package instancecmd

import (
	"fmt"

	"github.com/graphite-platforms/gcp-client/cmd/gcectl/cliutil"
	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/spf13/cobra"
)

func NewListInstancesCmd() *cobra.Command {
	var (
		project string
		labels  []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List instances across all zones by labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliutil.LoadConfig()
			if err != nil {
				return err
			}
			project, err := cliutil.ResolveProject(cfg, project)
			if err != nil {
				return err
			}

			parsed, err := cliutil.ParseKeyValues(labels)
			if err != nil {
				return err
			}

			client, err := cliutil.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			instances, err := client.Instances.ListInstancesWithLabels(cmd.Context(), &gcedomain.ListInstancesWithLabelsOptions{
				Project: project,
				Labels:  parsed,
			})
			if err != nil {
				return err
			}

			for _, inst := range instances {
				fmt.Fprintf(cmd.OutOrStdout(), "instance: name=%s, zone=%s, status=%s\n",
					inst.Name, inst.Zone, inst.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringArrayVar(&labels, "label", nil, "Label filter key=value, repeatable")

	return cmd
}
