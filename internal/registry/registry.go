// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"github.com/google/go-containerregistry/pkg/v1/types"
)

// TokenStrategy names the token exchange a registry expects before its
// manifests can be read anonymously.
type TokenStrategy string

const (
	// TokenStrategyNone sends the manifest request without a token.
	TokenStrategyNone TokenStrategy = "none"

	// TokenStrategyDockerHub queries {realm}?service={service}&scope=...
	TokenStrategyDockerHub TokenStrategy = "docker-hub"

	// TokenStrategyBearerRealm queries {realm}?scope=...[&service={service}]
	TokenStrategyBearerRealm TokenStrategy = "bearer-realm"
)

// DefaultMediaType is requested from registries that don't configure one.
const DefaultMediaType = types.DockerManifestSchema2

// TokenConfig describes where a registry hands out pull tokens.
type TokenConfig struct {
	Strategy TokenStrategy `yaml:"strategy"`
	Realm    string        `yaml:"realm,omitempty"`
	Service  string        `yaml:"service,omitempty"`
}

// Registry is a single entry of the registry table.
type Registry struct {
	// Host is the registry hostname, optionally with a port.
	Host string `yaml:"host"`

	// Token configures the token exchange performed before the manifest
	// request.
	Token TokenConfig `yaml:"token"`

	// MediaType is sent as the Accept header of the manifest request.
	MediaType types.MediaType `yaml:"mediaType"`
}

// Provider returns the token provider for the registry's strategy.
func (r Registry) Provider() TokenProvider {
	newProvider, ok := providers[r.Token.Strategy]
	if !ok {
		return noToken{}
	}
	return newProvider(r.Token)
}

// TokenEndpoint returns the configured realm, or "-" when no token exchange
// takes place.
func (r Registry) TokenEndpoint() string {
	if r.Token.Strategy == TokenStrategyNone || r.Token.Realm == "" {
		return "-"
	}
	return r.Token.Realm
}
