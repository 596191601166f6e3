// Package utils provides small helpers shared across packages, such as
// rendering loosely typed JSON values (external record fields) as strings.
package utils
