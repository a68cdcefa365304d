// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/jetstack/pullcheck/cmd"
)

func main() {
	header := &doc.GenManHeader{
		Title:   "PULLCHECK",
		Section: "1",
		Source:  "pullcheck",
	}
	const path = "man/"
	_ = os.RemoveAll(path)
	if err := os.Mkdir(path, 0755); err != nil {
		log.Fatal(err)
	}
	if err := doc.GenManTree(cmd.NewRoot(context.Background()), header, path); err != nil {
		log.Fatal(err)
	}
}
