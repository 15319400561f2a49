// Package kernel contains shared value objects used across all aggregates
// of the freight marketplace domain model.
package kernel
