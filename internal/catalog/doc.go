// Package catalog bundles the read-only show and song reference data.
//
// A [Catalog] indexes shows and songs by id and implements the discover
// screen filters (title/composer search, genre, vocal range).
package catalog
