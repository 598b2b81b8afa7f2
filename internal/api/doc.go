// Package api contains the HTTP handlers for the workout API.
//
// Handlers decode and validate request payloads, delegate to the service
// layer, and translate service errors into HTTP status codes and JSON
// error responses. They hold no business logic of their own.
package api
