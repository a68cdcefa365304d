// SPDX-License-Identifier: Apache-2.0

package image

import (
	"strings"

	"github.com/distribution/reference"
)

// DefaultTag is used when the reference carries no tag.
const DefaultTag = "latest"

// Reference is a repository path and tag as given on the command line.
type Reference struct {
	// Repository is the opaque repository path, e.g. library/nginx.
	Repository string `json:"repository"`

	// Tag is the manifest tag to look up.
	Tag string `json:"tag"`
}

// Parse splits raw on the first colon. Anything after a second colon is
// dropped. Parse never fails.
func Parse(raw string) Reference {
	parts := strings.SplitN(raw, ":", 3)

	ref := Reference{Repository: parts[0], Tag: DefaultTag}
	if len(parts) > 1 {
		ref.Tag = parts[1]
	}

	return ref
}

func (r Reference) String() string {
	return r.Repository + ":" + r.Tag
}

// HasRegistryPort reports whether raw is a registry qualified reference whose
// host includes a port, such as localhost:5000/app:tag. Parse splits these on
// the port separator.
func HasRegistryPort(raw string) bool {
	named, err := reference.ParseNormalizedNamed(raw)
	if err != nil {
		return false
	}
	return strings.Contains(reference.Domain(named), ":")
}
