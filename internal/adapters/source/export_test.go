package source

import "net/http"

// NewResolverWithClient exposes the client injection for tests.
func NewResolverWithClient(client *http.Client) *Resolver {
	return newResolverWithClient(client)
}
