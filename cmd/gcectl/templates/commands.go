package templatecmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/graphite-platforms/gcp-client/cmd/gcectl/cliutil"
	gcedomain "github.com/graphite-platforms/gcp-client/internal/domains/gce"
	"github.com/spf13/cobra"
	compute "google.golang.org/api/compute/v1"
)

func NewGetTemplateCmd() *cobra.Command {
	var (
		project  string
		template string
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get instance template details",
		RunE: func(cmd *cobra.Command, args []string) error {
			if template == "" {
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

			tmpl, err := client.Templates.GetTemplate(cmd.Context(), &gcedomain.GetInstanceTemplateOptions{
				Project:  project,
				Template: template,
			})
			if err != nil {
				return err
			}

			machineType := ""
			if tmpl.Properties != nil {
				machineType = tmpl.Properties.MachineType
			}
			fmt.Fprintf(cmd.OutOrStdout(), "template: name=%s, machine_type=%s\n", tmpl.Name, machineType)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&template, "name", "", "Template name")

	return cmd
}

func NewListTemplatesCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List instance templates",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			templates, err := client.Templates.ListTemplates(cmd.Context(), &gcedomain.ListInstanceTemplatesOptions{
				Project: project,
			})
			if err != nil {
				return err
			}

			for _, tmpl := range templates {
				fmt.Fprintf(cmd.OutOrStdout(), "template: name=%s\n", tmpl.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")

	return cmd
}

func NewCreateTemplateCmd() *cobra.Command {
	var (
		project string
		file    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an instance template from a JSON definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}

			cfg, err := cliutil.LoadConfig()
			if err != nil {
				return err
			}
			project, err := cliutil.ResolveProject(cfg, project)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var template compute.InstanceTemplate
			if err := json.Unmarshal(data, &template); err != nil {
				return fmt.Errorf("parse template definition: %w", err)
			}

			client, err := cliutil.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			op, err := client.Templates.InsertTemplate(cmd.Context(), &gcedomain.InsertInstanceTemplateOptions{
				Project:  project,
				Template: &template,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "operation: name=%s, status=%s\n", op.Name, op.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&file, "file", "", "Path to a JSON template definition")

	return cmd
}

func NewDeleteTemplateCmd() *cobra.Command {
	var (
		project  string
		template string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an instance template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if template == "" {
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

			op, err := client.Templates.DeleteTemplate(cmd.Context(), &gcedomain.DeleteInstanceTemplateOptions{
				Project:  project,
				Template: template,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "operation: name=%s, status=%s\n", op.Name, op.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&template, "name", "", "Template name")

	return cmd
}
