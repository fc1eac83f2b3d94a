package templatecmd

import "github.com/spf13/cobra"

func NewTemplatesGroup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Commands for instance template managing",
	}

	cmd.AddCommand(
		NewGetTemplateCmd(),
		NewListTemplatesCmd(),
		NewCreateTemplateCmd(),
		NewDeleteTemplateCmd(),
	)

	return cmd
}
