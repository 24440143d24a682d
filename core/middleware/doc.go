// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting the read API.
//   - rayid: Assigns a unique Request ID (RayID) to every incoming request,
//     storing it in the context locals and the response headers for tracing.
package middleware
