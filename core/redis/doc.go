// Package redis wraps go-redis client construction for the key-value record backend.
//
// Connect pings the server with exponential backoff until the configured connect
// timeout elapses, so the service can start alongside a Redis container that is
// still booting. NewClient builds a client without any network round-trip.
package redis
