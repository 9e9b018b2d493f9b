// Package service contains the application-specific use cases that go beyond
// a single store call. It orchestrates interactions between domain objects
// and repositories (defined in internal/store) to fulfill application features.
//
// Key components:
//
// 1. UserService:
//   - Registers users with check-then-insert, backed by the unique email index
//
// 2. RoleRequestService:
//   - Files role requests and applies administrator decisions
//   - Answers whether an email currently holds a role
//
// 3. BookingService:
//   - Selects the tourist or guide view of bookings and paginates it
//   - Counts bookings overall or per tourist
//
// 4. PaymentService:
//   - Converts a price into minor units and asks the processor for an intent
//
// Plain CRUD resources (packages, guides, stories, wishlist) are served by
// the API layer directly from their stores.
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations.
package service
