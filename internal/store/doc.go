// Package store defines interfaces for data persistence operations.
// Each interface corresponds to one collection of the document store. The
// interfaces abstract the storage engine from the HTTP layer so handlers can be
// exercised against in-memory fakes.
package store
