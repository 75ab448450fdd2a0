// Package quote exposes the estimation core over HTTP. It owns query
// parsing, service-name shorthand resolution, and the JSON response shapes;
// all pricing math lives in pkg/estimator.
package quote
