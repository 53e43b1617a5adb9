// Package catalog holds the immutable content catalog: ordered categories,
// their ordered cards, and the built-in first-words card set. Category order
// is significant — it defines the global traversal order for navigation.
package catalog
