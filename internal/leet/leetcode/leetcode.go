// Package leetcode fetches problem metadata from the public GraphQL endpoint.
package leetcode

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/imroc/req/v3"

	lerrors "github.com/leet-tools/leet/internal/leet/errors"
	"github.com/leet-tools/leet/internal/log"
)

const (
	DefaultEndpoint = "https://leetcode.com/graphql"
	DefaultTimeout  = 30 * time.Second

	questionQuery = `query questionData($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionFrontendId
    title
    exampleTestcaseList
    codeSnippets {
      lang
      langSlug
      code
    }
  }
}`
)

// Client performs the question query
type Client struct {
	Endpoint string
	Client   *req.Client
}

// Option configures a Client
type Option func(*Client)

// WithEndpoint overrides the GraphQL endpoint
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.Endpoint = endpoint }
}

// WithTimeout overrides the request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.Client.SetTimeout(d) }
}

// New returns a Client for the public endpoint
func New(opts ...Option) *Client {
	c := &Client{
		Endpoint: DefaultEndpoint,
		Client:   createClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func createClient() *req.Client {
	return req.C().
		SetUserAgent("leet/1.0").
		SetTimeout(DefaultTimeout).
		SetCommonHeader("Referer", "https://leetcode.com").
		SetCommonContentType("application/json")
}

// Slug derives the problem slug: trailing slashes are dropped and the last
// path segment is returned.
func Slug(link string) string {
	trimmed := strings.TrimRight(link, "/")
	idx := strings.LastIndex(trimmed, "/")
	return trimmed[idx+1:]
}

// Fetch retrieves and normalizes the question behind link. It blocks until
// the request completes, fails, or ctx is done.
func (c *Client) Fetch(ctx context.Context, link string) (*Question, error) {
	if c == nil || c.Client == nil {
		return nil, fmt.Errorf("leetcode client is not initialized")
	}

	slug := Slug(link)
	if slug == "" {
		return nil, lerrors.E(lerrors.KindValidation, link, fmt.Errorf("cannot derive problem slug"))
	}
	log.Info("Derived slug from link: %s", slug)

	body := graphQLRequest{
		OperationName: "questionData",
		Query:         questionQuery,
		Variables:     map[string]any{"titleSlug": slug},
	}

	log.InfoH3("Making POST request to: %s", c.Endpoint)
	resp, err := c.Client.R().
		SetContext(ctx).
		SetBodyJsonMarshal(body).
		Post(c.Endpoint)
	if err != nil {
		return nil, lerrors.E(lerrors.KindTransport, c.Endpoint, err)
	}

	var gql graphQLResponse
	if err := resp.UnmarshalJson(&gql); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, lerrors.E(lerrors.KindTransport, c.Endpoint, fmt.Errorf("request end with %d status, %s", resp.StatusCode, resp.String()))
		}
		return nil, lerrors.E(lerrors.KindMalformedResponse, c.Endpoint, fmt.Errorf("error unmarshal json: %w", err))
	}

	if len(gql.Errors) > 0 {
		return nil, lerrors.E(lerrors.KindAPI, slug, &APIError{Errors: gql.Errors})
	}

	if gql.Data == nil {
		if resp.StatusCode != http.StatusOK {
			return nil, lerrors.E(lerrors.KindTransport, c.Endpoint, fmt.Errorf("request end with %d status, %s", resp.StatusCode, resp.String()))
		}
		return nil, lerrors.E(lerrors.KindMalformedResponse, c.Endpoint, fmt.Errorf("response contained neither data nor errors"))
	}
	if gql.Data.Question == nil {
		return nil, lerrors.E(lerrors.KindMalformedResponse, slug, fmt.Errorf("no question returned"))
	}

	question := gql.Data.Question.normalize()
	log.InfoH2("Fetched question %s: %s (%d snippets)", question.QuestionId, question.QuestionTitle, len(question.CodeSnippets))
	return question, nil
}
