// Package middleware groups the Fiber middleware used by the HTTP surface.
package middleware
