// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"github.com/jetstack/pullcheck/cmd/options"
	"github.com/jetstack/pullcheck/internal/check"
	"github.com/jetstack/pullcheck/internal/image"
	"github.com/jetstack/pullcheck/internal/output"
	"github.com/jetstack/pullcheck/internal/registry"
)

// version is overridden at build time with -ldflags "-X ...".
var version = "0.1.0"

func NewRoot(ctx context.Context) *cobra.Command {
	return newRoot(ctx, registry.Default())
}

func newRoot(ctx context.Context, table *registry.Table, checkOpts ...check.Option) *cobra.Command {
	var opts *options.Check

	root := &cobra.Command{
		Use:   "pullcheck IMAGE",
		Short: "Check whether a container image is available in public registries",
		Long: `Pullcheck looks up the manifest of a container image in a fixed list of public
registries and reports, one line per registry, whether the image can be pulled.

pullcheck library/nginx:latest`,
		Version:           version,
		Args:              options.MustSingleImageArgs,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			level, _ := opts.Level()
			log := newLogger(level, cmd.ErrOrStderr()).WithField("component", "pullcheck")

			raw := args[0]
			if image.HasRegistryPort(raw) {
				log.WithField("image", raw).Warn("image names a registry port; the reference is split on its first colon")
			}
			ref := image.Parse(raw)

			checker := check.New(log, append([]check.Option{check.WithTimeout(opts.Timeout)}, checkOpts...)...)
			printer := output.NewPrinter(cmd.OutOrStdout())
			checker.CheckAll(ctx, table.Registries, ref, printer.Print)

			return nil
		},
	}
	opts = options.RegisterCheck(root)

	root.AddCommand(newRegistries(table))

	return root
}

func Execute() {
	ctx := signals.SetupSignalHandler()
	if err := NewRoot(ctx).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
