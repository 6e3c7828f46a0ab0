package funccmd

import (
	"github.com/spf13/cobra"

	packagerapp "github.com/10Narratives/faaspack/internal/app/packager"
	configutils "github.com/10Narratives/faaspack/pkg/config"
	logutils "github.com/10Narratives/faaspack/pkg/logging"
)

func NewPackageCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "package [function...]",
		Short: "Assemble deployment packages for the configured functions",
		Long:  "Assemble deployment packages for the configured functions. Without arguments every configured function is packaged.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(configPath)
			if err != nil {
				return err
			}
			return app.Package(cmd.Context(), args...)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "faaspack.yaml", "Path to the packager config file")

	return cmd
}

func newApp(configPath string) (*packagerapp.App, error) {
	cfg, err := configutils.ReadFromFile[packagerapp.Config](configPath)
	if err != nil {
		return nil, err
	}

	log, err := logutils.NewLogger(cfg.Env)
	if err != nil {
		return nil, err
	}

	return packagerapp.NewApp(cfg, log)
}
