// Package domain contains the core business entities, value objects, and
// domain logic of the application: users, products and their images.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
