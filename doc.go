// Package promroute is a collection of packages for instrumenting Go
// web applications with Prometheus metrics keyed by route template.
//
// See the httpmetrics package for the request-recording middleware and
// exposition endpoint, and hmiddleware for the companion request ID,
// logging, and panic recovery middleware.
package promroute
