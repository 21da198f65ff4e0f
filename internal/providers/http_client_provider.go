package providers

import (
	"devstats/internal/structures"
	"net"
	"net/http"
	"time"
)

// HttpClientInterface is the outbound fetch collaborator used for all
// upstream API calls.
type HttpClientInterface interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHttpClientProvider(conf *structures.Config) HttpClientInterface {
	return &http.Client{
		Timeout: conf.Upstream.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		},
	}
}
