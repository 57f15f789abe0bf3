package config

import (
	"log"
	"strings"
)

// AdminAllowlist is the set of external identity IDs granted the admin role.
// It is built once at startup and immutable for the process lifetime; the
// admin decision is always recomputed from it, never trusted from storage.
type AdminAllowlist struct {
	uids map[string]struct{}
}

// NewAdminAllowlist parses a comma-separated list of external IDs.
// Entries are trimmed; empty entries are dropped.
func NewAdminAllowlist(csv string) *AdminAllowlist {
	uids := make(map[string]struct{})
	for _, entry := range strings.Split(csv, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		uids[entry] = struct{}{}
	}

	if len(uids) == 0 {
		log.Println("⚠️ Admin allowlist is empty: no account can obtain the admin role")
	}

	return &AdminAllowlist{uids: uids}
}

// IsAdmin reports whether the given external ID is allowlisted.
// Matching is exact string equality after trimming; empty input is never
// an admin.
func (a *AdminAllowlist) IsAdmin(externalID string) bool {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return false
	}
	_, ok := a.uids[externalID]
	return ok
}

// Size returns the number of allowlisted IDs.
func (a *AdminAllowlist) Size() int {
	return len(a.uids)
}
