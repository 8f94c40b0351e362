// Package auth contains password hashing for user registration.
package auth
