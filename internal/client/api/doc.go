// Package api is the HTTP transport between the admin client and the REST
// API.
//
// The Client interface covers JSON requests (Get, Post, Put, Delete) and
// multipart uploads (PostMultipart, PutMultipart). HTTPClient implements it
// over net/http: it resolves paths against a base URL, injects a bearer
// token from a TokenSource, tags each request with an X-Request-ID and
// decodes 2xx bodies into the caller's value.
//
// # Error Handling
//
// Every failure is an *Error carrying the HTTP status and the server's
// message (FastAPI's "detail" field when present). Errors match the
// sentinels ErrUnauthorized, ErrNotFound and ErrUnavailable with errors.Is.
// Nothing is retried.
package api
