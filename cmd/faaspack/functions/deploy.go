package funccmd

import (
	"github.com/spf13/cobra"
)

func NewDeployCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "deploy [function...]",
		Short: "Assemble deployment packages and upload them to the deployment bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(configPath)
			if err != nil {
				return err
			}
			return app.Deploy(cmd.Context(), args...)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "faaspack.yaml", "Path to the packager config file")

	return cmd
}
