// Package domain contains the entities stored by the tour-booking service:
// packages, users, wishlist items, guides, role requests, bookings, and
// stories. Each entity carries bson tags for the document store, json tags
// for the REST surface, and validate tags enforced at the HTTP boundary.
package domain
