// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts HTTP to the user and product services:
// handlers decode and validate JSON with go-playground/validator, call a
// service, and map service errors to status codes with
// MapErrorToStatusCode and GetSafeErrorMessage.
package api
