// SPDX-License-Identifier: Apache-2.0

package output

import (
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/jetstack/pullcheck/internal/registry"
)

// PrintRegistries renders the registry table in check order.
func PrintRegistries(out io.Writer, t *registry.Table) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Registry", "Token Strategy", "Token Endpoint", "Media Type").WithWriter(out)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for _, r := range t.Registries {
		tbl.AddRow(r.Host, r.Token.Strategy, r.TokenEndpoint(), r.MediaType)
	}
	tbl.Print()
}
