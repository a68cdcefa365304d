// SPDX-License-Identifier: Apache-2.0

package options

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jetstack/pullcheck/internal/check"
)

// Check are options for configuring registry checks.
type Check struct {
	// Timeout bounds every token and manifest request.
	Timeout time.Duration `json:"timeout"`

	// LogLevel is the verbosity of diagnostics written to stderr.
	LogLevel string `json:"logLevel"`
}

func RegisterCheck(cmd *cobra.Command) *Check {
	var opts Check
	opts.addFlags(cmd.Flags())
	return &opts
}

func (o *Check) addFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&o.Timeout,
		"timeout", check.DefaultTimeout,
		"Time allowed for each token and manifest request.")

	fs.StringVarP(&o.LogLevel,
		"log-level", "v", "warn",
		"Log level written to stderr (trace, debug, info, warn, error).")
}

// Level returns the parsed log level.
func (o *Check) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("failed to parse --log-level %q: %s", o.LogLevel, err)
	}
	return level, nil
}

func (o *Check) Validate() error {
	if o.Timeout <= 0 {
		return fmt.Errorf("invalid --timeout %s, must be greater than zero", o.Timeout)
	}
	if _, err := o.Level(); err != nil {
		return err
	}
	return nil
}
