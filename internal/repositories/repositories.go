// Package repositories holds the HTTP clients for the weather provider: the
// forecast/archive endpoint and the geocoding endpoint.
package repositories

import "net/http"

// HTTPClient is the part of *http.Client the repositories need. Injected so
// tests can point requests at mock servers or fail them outright.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
