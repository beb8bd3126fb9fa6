// Package order provides a read-only view of customer orders.
//
// Orders are created and billed elsewhere; the logistics service reads them to
// default the contact and address of new pickup and delivery tasks, and to list
// the articles that must be weighed at pickup.
package order
