// Package guard decides whether a principal may perform an operation. It is
// the single choke point for role checks and the tenant-isolation gate.
package guard

import "github.com/nominasoft/hr-system/internal/core/domain"

// Check allows the operation when the principal holds one of the given roles
// (no roles means any authenticated principal) and, when resourceCompanyID is
// non-empty, belongs to that company. Denial reports domain.ErrUnauthorized;
// the tenant gate applies regardless of role.
func Check(p domain.Principal, resourceCompanyID string, roles ...string) error {
	if p.UserID == "" {
		return domain.ErrUnauthorized
	}
	if resourceCompanyID != "" && p.CompanyID != resourceCompanyID {
		return domain.ErrUnauthorized
	}
	if len(roles) == 0 {
		return nil
	}
	for _, r := range roles {
		if p.Role == r {
			return nil
		}
	}
	return domain.ErrUnauthorized
}
