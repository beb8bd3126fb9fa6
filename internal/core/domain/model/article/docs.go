// Package article models the items of an order that are weighed at pickup.
package article
