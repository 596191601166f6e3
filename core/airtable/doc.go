// Package airtable is a minimal client for the Airtable REST API.
//
// The service only needs one call: creating a record when a todo is created through
// the API, so the todo can be linked to its Airtable counterpart. The client satisfies
// reconcile.Mirror. An unconfigured client (no API key, base or table) returns
// ErrNotConfigured, which the engine treats as "skip mirroring".
package airtable
