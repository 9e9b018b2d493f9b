// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between browser clients of the
// tour site and the internal stores and services, translating HTTP concerns
// into single document operations.
//
// Successful responses keep the shapes the site's front end already
// consumes: insert, update and delete acknowledgements, bare documents, and
// arrays of documents. Errors use the envelope from the shared package.
package api
