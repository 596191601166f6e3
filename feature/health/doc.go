// Package health exposes /healthz and /readyz probes.
package health
