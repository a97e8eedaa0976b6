// Package api handles incoming HTTP requests for acronyms and users: path
// parameter parsing, body decoding and validation, error-to-status mapping
// and response formatting. Each handler exposes its endpoints as a []Route
// table that the server mounts under /api.
package api
