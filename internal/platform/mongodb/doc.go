// Package mongodb provides MongoDB-specific implementations for the data
// storage interfaces defined in the internal/store package.
// It handles the client connection, index bootstrap, query construction, and
// mapping between driver errors and store errors.
package mongodb
