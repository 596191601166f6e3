// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation backed by the cached secret. Applied to the todo routes.
//   - rayid: assigns a request id (ray id) to every request, stored in locals and
//     echoed in the X-Ray-ID response header for tracing.
package middleware
