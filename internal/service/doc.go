// Package service contains the application use cases: user registration and
// the product catalog. Services orchestrate domain objects and the stores
// defined in internal/store, own the transaction boundaries, and translate
// store failures into the error kinds declared in errors.go.
//
// Services receive their dependencies through constructor injection and
// never depend on a specific storage implementation.
package service
