// Package ioformat implements alignkit's line-oriented input grammar and
// its chunked, streaming output writer. It is the only package that knows
// the wire format; align and its dependents work exclusively with typed
// values.
package ioformat
