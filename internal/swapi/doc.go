// Package swapi provides an HTTP client for the Star Wars API people endpoints.
//
// # Overview
//
// The client is a thin I/O boundary. It encodes parameters, performs a single
// GET, and decodes the JSON body into Page or Person. It holds no state
// between calls.
//
// # Endpoints
//
//   - GET {base}/people/?page=N[&search=S]: one page of people plus the total count
//   - GET {base}/people/{id}/: a single person
//
// The search parameter is omitted entirely when the term is blank; SWAPI
// treats "search=" differently from no filter.
//
// # Error Handling
//
// Every failure is a *FetchError carrying the operation, the request URL and,
// when a response arrived, its status code:
//
//	page, err := client.ListPeople(ctx, 2, "sky")
//	var fe *swapi.FetchError
//	if errors.As(err, &fe) {
//		log.Printf("list failed with status %d", fe.StatusCode)
//	}
//	if errors.Is(err, swapi.ErrNotFound) {
//		// 404
//	}
//
// Requests are never retried. The only bound on a request is the HTTP client
// timeout.
//
// # Identifiers
//
// Records identify themselves by URL. IDFromURL extracts the last non-empty
// path segment, so "https://swapi.dev/api/people/4/" yields "4".
package swapi
