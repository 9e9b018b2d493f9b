package auth

// AuthorizeOwner permits an owner-scoped operation only when identity is
// present and its email equals owner exactly.
func AuthorizeOwner(identity *Claims, owner string) error {
	if identity == nil || identity.Email == "" {
		return ErrMissingIdentity
	}
	if identity.Email != owner {
		return ErrForbidden
	}
	return nil
}
