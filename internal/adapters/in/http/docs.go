// Package http is the echo boundary of the delivery service: role tokens,
// the ApiResponse envelope and the /deliveries endpoints.
package http
