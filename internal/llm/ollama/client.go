package ollama

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"
)

// DefaultHost is where a locally installed daemon listens.
const DefaultHost = "http://127.0.0.1:11434"

type Client struct {
	Client *api.Client
	Host   string
}

func NewClient(host string) (*Client, error) {
	if host == "" {
		host = DefaultHost
	}

	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid ollama host %q: scheme and host are required", host)
	}

	return &Client{
		Client: api.NewClient(base, http.DefaultClient),
		Host:   base.String(),
	}, nil
}
