package main

import (
	"context"
	"os/signal"
	"syscall"

	funccmd "github.com/10Narratives/faaspack/cmd/faaspack/functions"
	errorutils "github.com/10Narratives/faaspack/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "faaspack",
		Short: "Tool for assembling FaaS deployment packages",
		Long:  "Tool for assembling container-backed FaaS deployment packages and placing them in a deployment bucket.",
	}

	rootCmd.AddCommand(
		funccmd.NewPackageCmd(),
		funccmd.NewDeployCmd(),
	)

	errorutils.Try(rootCmd.ExecuteContext(ctx))
}
