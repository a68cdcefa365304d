// SPDX-License-Identifier: Apache-2.0

package options

import (
	"errors"

	"github.com/spf13/cobra"
)

var ErrSingleImage = errors.New("expected single image name argument")

// MustSingleImageArgs accepts exactly one positional IMAGE argument.
func MustSingleImageArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return ErrSingleImage
	}

	return nil
}
