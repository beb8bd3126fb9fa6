// Package driver provides the Driver aggregate: a field agent with an availability
// flag and an optional last known position.
package driver
