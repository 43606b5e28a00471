// Package requestid tags requests with an X-Request-ID and exposes it to
// loggers through LoggerExtractor.
package requestid
