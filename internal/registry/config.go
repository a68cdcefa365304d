// SPDX-License-Identifier: Apache-2.0

package registry

import (
	_ "embed"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ExpectedVersion is the only registry table version understood.
const ExpectedVersion = "1"

var (
	//go:embed registries.yaml
	defaultTable []byte

	ErrUnsupportedVersion = errors.New("unsupported registry table version")
	ErrInvalidRegistry    = errors.New("invalid registry entry")
)

// Table is the ordered list of registries an image is checked against.
type Table struct {
	Version    string     `yaml:"version"`
	Registries []Registry `yaml:"registries"`
}

// Default returns the registry table compiled into the binary.
func Default() *Table {
	t, err := LoadTable(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded registry table is invalid: %s", err))
	}
	return t
}

// LoadTable parses and validates a YAML registry table. Entry order is kept.
func LoadTable(b []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, errors.Wrap(err, "parsing registry table")
	}

	if t.Version != ExpectedVersion {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "expected %q, found %q", ExpectedVersion, t.Version)
	}

	for i := range t.Registries {
		if err := t.Registries[i].complete(); err != nil {
			return nil, errors.Wrapf(err, "registry %d", i)
		}
	}

	return &t, nil
}

// complete fills in defaults and rejects entries that cannot be checked.
func (r *Registry) complete() error {
	if r.Host == "" {
		return errors.Wrap(ErrInvalidRegistry, "missing host")
	}

	if r.Token.Strategy == "" {
		r.Token.Strategy = TokenStrategyNone
	}
	if _, ok := providers[r.Token.Strategy]; !ok {
		return errors.Wrapf(ErrInvalidRegistry, "%s: unknown token strategy %q", r.Host, r.Token.Strategy)
	}
	if r.Token.Strategy != TokenStrategyNone && r.Token.Realm == "" {
		return errors.Wrapf(ErrInvalidRegistry, "%s: token strategy %q needs a realm", r.Host, r.Token.Strategy)
	}

	if r.MediaType == "" {
		r.MediaType = DefaultMediaType
	}
	if !r.MediaType.IsImage() && !r.MediaType.IsIndex() {
		return errors.Wrapf(ErrInvalidRegistry, "%s: %q is not a manifest media type", r.Host, r.MediaType)
	}

	return nil
}
