package workspace

import (
	"crypto/rand"
	"fmt"
)

// uuidV4 generates an RFC 4122 version-4 UUID. It is hand-rolled rather than
// pulled from a library (see DESIGN.md for why) — sixteen random bytes with
// the version and variant bits set per the RFC. A ULID or other unique-id
// scheme would also work here since the collision-avoidance guarantee only
// needs freshness, but version-4 UUIDs are the form this workspace layout
// is documented and tested against.
func uuidV4() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10

	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16]), nil
}
