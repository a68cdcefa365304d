// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jetstack/pullcheck/internal/output"
	"github.com/jetstack/pullcheck/internal/registry"
)

func newRegistries(table *registry.Table) *cobra.Command {
	return &cobra.Command{
		Use:   "registries",
		Short: "List the registries images are checked against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output.PrintRegistries(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
