// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/jetstack/pullcheck/cmd"

func main() {
	cmd.Execute()
}
