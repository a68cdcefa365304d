// SPDX-License-Identifier: Apache-2.0

package check

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hako/durafmt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jetstack/pullcheck/internal/image"
	"github.com/jetstack/pullcheck/internal/registry"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
	StatusError       Status = "error"
)

// Result is the outcome of checking one registry.
type Result struct {
	// Registry is the host that was checked.
	Registry string

	// Reference is the image that was looked up.
	Reference image.Reference

	Status Status

	// StatusCode is the HTTP status of the manifest request. Zero if the
	// request was never answered.
	StatusCode int

	// Err is set when the token exchange or the manifest request failed.
	Err error

	Duration time.Duration
}

// Available reports whether the manifest was found.
func (r Result) Available() bool {
	return r.Status == StatusAvailable
}

// Checker looks up image manifests in registries.
type Checker struct {
	log     *logrus.Entry
	client  *http.Client
	scheme  string
	timeout time.Duration
}

func New(log *logrus.Entry, opts ...Option) *Checker {
	o := makeOptions(opts...)

	return &Checker{
		log:     log.WithField("module", "checker"),
		client:  o.client,
		scheme:  o.scheme,
		timeout: o.timeout,
	}
}

// CheckAll checks ref against every registry in order. report is called with
// each result as soon as it is known. A failing registry never prevents the
// remaining ones from being checked.
func (c *Checker) CheckAll(ctx context.Context, regs []registry.Registry, ref image.Reference, report func(Result)) []Result {
	results := make([]Result, 0, len(regs))
	for _, reg := range regs {
		res := c.Check(ctx, reg, ref)
		if report != nil {
			report(res)
		}
		results = append(results, res)
	}
	return results
}

// Check looks up the manifest of ref in reg. Failures are reported through
// the returned Result rather than an error.
func (c *Checker) Check(ctx context.Context, reg registry.Registry, ref image.Reference) Result {
	start := time.Now()
	res := c.check(ctx, reg, ref)
	res.Duration = time.Since(start)

	log := c.log.WithFields(logrus.Fields{
		"registry": reg.Host,
		"image":    ref.String(),
		"status":   res.Status,
		"took":     durafmt.Parse(res.Duration).LimitFirstN(2).String(),
	})
	if res.Err != nil {
		log.WithError(res.Err).Info("registry check failed")
	} else {
		log.Debug("registry check complete")
	}

	return res
}

func (c *Checker) check(ctx context.Context, reg registry.Registry, ref image.Reference) Result {
	res := Result{
		Registry:  reg.Host,
		Reference: ref,
		Status:    StatusUnavailable,
	}

	token, err := c.token(ctx, reg, ref.Repository)
	if err != nil {
		res.Err = errors.Wrap(err, "fetching token")
		if !errors.Is(err, registry.ErrTokenNotFound) {
			res.Status = StatusError
		}
		return res
	}

	code, err := c.manifest(ctx, reg, ref, token)
	if err != nil {
		res.Status = StatusError
		res.Err = errors.Wrap(err, "fetching manifest")
		return res
	}

	res.StatusCode = code
	if code >= 200 && code < 300 {
		res.Status = StatusAvailable
	}

	return res
}

func (c *Checker) token(ctx context.Context, reg registry.Registry, repo string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	return reg.Provider().Token(ctx, c.client, repo)
}

func (c *Checker) manifest(ctx context.Context, reg registry.Registry, ref image.Reference, token string) (int, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	url := fmt.Sprintf("%s%s/v2/%s/manifests/%s", c.scheme, reg.Host, ref.Repository, ref.Tag)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", string(reg.MediaType))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.log.WithFields(logrus.Fields{
		"url":    url,
		"accept": reg.MediaType,
		"auth":   token != "",
		"status": resp.StatusCode,
	}).Debug("manifest request")

	return resp.StatusCode, nil
}

func (c *Checker) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
