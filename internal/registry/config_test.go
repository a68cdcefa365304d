// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"errors"
	"testing"

	"github.com/google/go-containerregistry/pkg/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	table := Default()

	hosts := make([]string, len(table.Registries))
	for i, r := range table.Registries {
		hosts[i] = r.Host
	}
	assert.Equal(t, []string{
		"registry-1.docker.io",
		"ghcr.io",
		"gcr.io",
		"registry.k8s.io",
		"quay.io",
		"registry.opensource.zalan.do",
	}, hosts)

	for _, r := range table.Registries {
		if r.Host == "gcr.io" {
			assert.Equal(t, types.OCIImageIndex, r.MediaType)
		} else {
			assert.Equal(t, types.DockerManifestSchema2, r.MediaType, r.Host)
		}
	}

	assert.Equal(t, TokenStrategyDockerHub, table.Registries[0].Token.Strategy)
	assert.Equal(t, TokenStrategyBearerRealm, table.Registries[1].Token.Strategy)
	assert.Equal(t, TokenStrategyBearerRealm, table.Registries[2].Token.Strategy)
	for _, r := range table.Registries[3:] {
		assert.Equal(t, TokenStrategyNone, r.Token.Strategy, r.Host)
		assert.Equal(t, "-", r.TokenEndpoint())
	}
}

func TestLoadTable(t *testing.T) {
	t.Run("defaults are filled in", func(t *testing.T) {
		table, err := LoadTable([]byte(`
version: "1"
registries:
  - host: b.example.com
  - host: a.example.com
    token:
      strategy: bearer-realm
      realm: https://a.example.com/token
`))
		require.NoError(t, err)
		require.Len(t, table.Registries, 2)

		assert.Equal(t, "b.example.com", table.Registries[0].Host)
		assert.Equal(t, TokenStrategyNone, table.Registries[0].Token.Strategy)
		assert.Equal(t, DefaultMediaType, table.Registries[0].MediaType)

		assert.Equal(t, "a.example.com", table.Registries[1].Host)
		assert.Equal(t, "https://a.example.com/token", table.Registries[1].TokenEndpoint())
	})

	testCases := map[string]struct {
		doc     string
		wantErr error
	}{
		"wrong version": {
			doc:     `version: "2"`,
			wantErr: ErrUnsupportedVersion,
		},
		"missing version": {
			doc:     `registries: []`,
			wantErr: ErrUnsupportedVersion,
		},
		"missing host": {
			doc: `
version: "1"
registries:
  - mediaType: application/vnd.docker.distribution.manifest.v2+json`,
			wantErr: ErrInvalidRegistry,
		},
		"unknown strategy": {
			doc: `
version: "1"
registries:
  - host: example.com
    token:
      strategy: oauth`,
			wantErr: ErrInvalidRegistry,
		},
		"token strategy without realm": {
			doc: `
version: "1"
registries:
  - host: example.com
    token:
      strategy: docker-hub`,
			wantErr: ErrInvalidRegistry,
		},
		"layer media type": {
			doc: `
version: "1"
registries:
  - host: example.com
    mediaType: application/vnd.oci.image.layer.v1.tar+gzip`,
			wantErr: ErrInvalidRegistry,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadTable([]byte(tc.doc))
			require.Error(t, err)
			assert.Truef(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadTable([]byte("version: ["))
		assert.Error(t, err)
	})
}

func TestProviderUnknownStrategy(t *testing.T) {
	r := Registry{Host: "example.com", Token: TokenConfig{Strategy: "oauth"}}
	assert.IsType(t, noToken{}, r.Provider())
}
