package devid

import (
	"strings"

	"github.com/google/uuid"
)

// Normalize canonicalizes a device UUID as advertised in discovery
// metadata. It accepts the bare dashed form, the "urn:uuid:" URN form,
// and braced forms, in any case, and returns the canonical lowercase
// dashed representation. The second return is false when s is not a
// UUID in any accepted shape.
func Normalize(s string) (string, bool) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return u.String(), true
}

// FromEndpoint returns a deterministic identifier for a device that
// advertises no UUID, derived from its name and endpoint URL. The same
// (name, endpoint) pair always yields the same identifier, so a device
// keeps its identity across rediscovery.
func FromEndpoint(name, endpoint string) string {
	// NUL keeps ("ab", "c") and ("a", "bc") distinct.
	data := []byte(name + "\x00" + endpoint)
	return uuid.NewSHA1(uuid.NameSpaceURL, data).String()
}
