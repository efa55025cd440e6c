package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/pkg/errors"
)

// Executor runs a GraphQL document and returns its "data" member.
// A response carrying GraphQL errors is reported as an error.
type Executor interface {
	Execute(ctx context.Context, query string) (json.RawMessage, error)
}

// SchemaExecutor runs queries in-process against the gateway's own schema.
type SchemaExecutor struct {
	Schema *graphql.Schema
}

func NewSchemaExecutor(schema *graphql.Schema) *SchemaExecutor {
	return &SchemaExecutor{Schema: schema}
}

func (e *SchemaExecutor) Execute(ctx context.Context, query string) (json.RawMessage, error) {
	resp := e.Schema.Exec(ctx, query, "", nil)
	if len(resp.Errors) > 0 {
		return nil, errors.Errorf("graphql: %s", resp.Errors[0].Message)
	}
	return resp.Data, nil
}

// RemoteExecutor POSTs queries to a GraphQL endpoint over HTTP.
type RemoteExecutor struct {
	URL    string
	Client *http.Client
}

func NewRemoteExecutor(url string, timeout time.Duration) *RemoteExecutor {
	return &RemoteExecutor{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

type graphQLRequest struct {
	Query string `json:"query"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (e *RemoteExecutor) Execute(ctx context.Context, query string) (json.RawMessage, error) {
	body, err := json.Marshal(graphQLRequest{Query: query})
	if err != nil {
		return nil, errors.Wrap(err, "graphql: encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.URL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "graphql: build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "graphql: POST %s", e.URL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Errorf("graphql: POST %s: status %d: %s", e.URL, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "graphql: decode response")
	}
	if len(out.Errors) > 0 {
		return nil, errors.Errorf("graphql: %s", out.Errors[0].Message)
	}
	return out.Data, nil
}
