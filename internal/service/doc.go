// Package service contains the application use cases. It orchestrates the
// store interfaces (defined in internal/store) and the domain entities to
// fulfill the acronym and user operations exposed by the API.
//
// Services receive their dependencies through constructor injection and never
// depend on a specific store implementation. Failures are returned as
// *ServiceError values that wrap the underlying store or domain error, so the
// API layer can still match them with errors.Is.
package service
