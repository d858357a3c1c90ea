// Package currency serves the currency registry over HTTP.
//
// Routes:
//
//	GET  /currencies?category=currency|funds|historic
//	GET  /currencies/:code
//	GET  /currencies/numeric/:numeric
//	GET  /countries/:country
//	POST /currencies/reload
//
// Lookups read the registry held by a reconcile.Store, building it on first
// use. Unknown codes and countries answer 404.
package currency
