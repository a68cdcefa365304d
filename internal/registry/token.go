// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when a token endpoint answers without a token.
var ErrTokenNotFound = errors.New("token not found")

// TokenProvider exchanges an anonymous request for a pull token.
type TokenProvider interface {
	// Token returns a bearer token for pulling repo. An empty token with a
	// nil error means the registry is queried unauthenticated.
	Token(ctx context.Context, client *http.Client, repo string) (string, error)
}

// providers maps every known strategy to its provider constructor.
var providers = map[TokenStrategy]func(TokenConfig) TokenProvider{
	TokenStrategyNone: func(TokenConfig) TokenProvider {
		return noToken{}
	},
	TokenStrategyDockerHub: func(c TokenConfig) TokenProvider {
		return &dockerHubToken{realm: c.Realm, service: c.Service}
	},
	TokenStrategyBearerRealm: func(c TokenConfig) TokenProvider {
		return &bearerRealmToken{realm: c.Realm, service: c.Service}
	},
}

type authResponse struct {
	Token string `json:"token"`
}

type noToken struct{}

func (noToken) Token(context.Context, *http.Client, string) (string, error) {
	return "", nil
}

type dockerHubToken struct {
	realm, service string
}

func (d *dockerHubToken) Token(ctx context.Context, client *http.Client, repo string) (string, error) {
	return fetchToken(ctx, client, d.url(repo))
}

func (d *dockerHubToken) url(repo string) string {
	return fmt.Sprintf("%s?service=%s&scope=%s", d.realm, d.service, pullScope(repo))
}

type bearerRealmToken struct {
	realm, service string
}

func (b *bearerRealmToken) Token(ctx context.Context, client *http.Client, repo string) (string, error) {
	return fetchToken(ctx, client, b.url(repo))
}

func (b *bearerRealmToken) url(repo string) string {
	u := fmt.Sprintf("%s?scope=%s", b.realm, pullScope(repo))
	if b.service != "" {
		u += "&service=" + b.service
	}
	return u
}

func pullScope(repo string) string {
	return "repository:" + repo + ":pull"
}

// fetchToken performs a single GET against url and extracts the token field
// of the JSON body. The response status is not inspected: registries answer
// denied requests with a JSON error body, which surfaces as ErrTokenNotFound.
func fetchToken(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "building token request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "requesting token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading token response")
	}

	var auth authResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		return "", errors.Wrapf(err, "decoding token response (status %d)", resp.StatusCode)
	}

	if auth.Token == "" {
		return "", errors.Wrapf(ErrTokenNotFound, "status %d", resp.StatusCode)
	}

	return auth.Token, nil
}
