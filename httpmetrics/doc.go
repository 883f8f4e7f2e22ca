// Package httpmetrics provides Chi style (function that takes and
// returns a HTTP handler) middleware which records Prometheus metrics
// for every request passing through it: request and response counts,
// processing time, panics, and an in-progress gauge.
//
// All metrics are labeled by HTTP method and by the matched route
// template (e.g. "/foo/{bar}/") rather than the raw URL path, so label
// cardinality stays bounded by the application's route table instead of
// growing with every distinct parameter value.
package httpmetrics
