// Package middleware groups the HTTP middleware of the lookup API.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header. An empty key
//     disables the check.
//   - rayid: tags every request with a ray id, injected into the fiber locals
//     for logger.WithRayID and echoed in the X-Ray-ID response header.
//
// rayid must be registered first so every later log line carries the id.
package middleware
