package snapshotcmd

import "github.com/spf13/cobra"

func NewSnapshotsGroup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Commands for snapshot managing",
	}

	cmd.AddCommand(
		NewCreateSnapshotCmd(),
		NewGetSnapshotCmd(),
		NewDeleteSnapshotCmd(),
	)

	return cmd
}
