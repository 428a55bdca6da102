// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: assigns a ray ID to every request, exposed in Locals and the X-Ray-ID header.
//
// RayID must be registered first so every later log line can carry the ID.
package middleware
