package instancecmd

import (
	"fmt"

	"github.com/graphite-platforms/gcp-client/cmd/gcectl/cliutil"
	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/spf13/cobra"
	compute "google.golang.org/api/compute/v1"
)

func NewAppendMetadataCmd() *cobra.Command {
	var (
		project  string
		zone     string
		instance string
		items    []string
	)

	cmd := &cobra.Command{
		Use:   "append-metadata",
		Short: "Merge metadata items into an instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if zone == "" || instance == "" {
				return fmt.Errorf("--zone and --name are required")
			}
			if len(items) == 0 {
				return fmt.Errorf("at least one --item is required")
			}

			cfg, err := cliutil.LoadConfig()
			if err != nil {
				return err
			}
			project, err := cliutil.ResolveProject(cfg, project)
			if err != nil {
				return err
			}

			parsed, err := cliutil.ParseKeyValues(items)
			if err != nil {
				return err
			}
			metadataItems := make([]*compute.MetadataItems, 0, len(parsed))
			for key, value := range parsed {
				metadataItems = append(metadataItems, &compute.MetadataItems{Key: key, Value: &value})
			}

			client, err := cliutil.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			opErr, err := client.Instances.AppendMetadata(cmd.Context(), &gcedomain.AppendMetadataOptions{
				Project:  project,
				Zone:     zone,
				Instance: instance,
				Items:    metadataItems,
				Timeout:  cfg.Timeout,
			})
			if err != nil {
				return err
			}
			if opErr != nil {
				return fmt.Errorf("set metadata failed: %s", gcedomain.FormatOperationError(opErr))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "metadata updated: instance=%s, items=%d\n", instance, len(metadataItems))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&zone, "zone", "", "Zone name or self link")
	cmd.Flags().StringVar(&instance, "name", "", "Instance name")
	cmd.Flags().StringArrayVar(&items, "item", nil, "Metadata item key=value, repeatable")

	return cmd
}
