// Package webhook receives Airtable change notifications.
//
// POST /webhook takes the Airtable payload, reconciles each changed record into the
// todo table and reports how many records were created, updated or failed. Per-record
// failures never fail the delivery; only an unparseable body returns 500.
//
// The route is public, like the Airtable webhook endpoint it replaces.
package webhook
