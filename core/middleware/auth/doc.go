// Package auth gates routes behind a shared API key.
//
// The expected key comes from a KeyProvider (normally secrets.Cache) and is compared
// with the x-api-key request header. Any failure to obtain the key denies the request.
package auth
