// Package util provides small helpers shared by the loader and the CLI.
//
//   - Truncate — cap subject strings before they are written to logs
package util
