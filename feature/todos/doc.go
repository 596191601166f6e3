// Package todos implements the direct todo API.
//
//   - POST /todo creates a todo with a fresh id, attempting to create the matching
//     Airtable record first so the two can be linked. A failed mirror never fails
//     the request.
//   - GET /todos lists every todo, newest first.
//
// Both routes are mounted under /v1 and protected by the API key middleware.
package todos
