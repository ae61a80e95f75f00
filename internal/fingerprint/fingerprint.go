// Package fingerprint derives a short, stable identifier for a workspace
// path or resolved configuration, included in reproduction banners so two
// failure reports from differently configured environments are visibly
// distinguishable at a glance.
package fingerprint

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Short returns the first four bytes (eight hex characters) of the BLAKE3
// hash of input. It is not a security digest, only a collision-resistant
// label shown in human-facing text.
func Short(input string) string {
	sum := blake3.Sum256([]byte(input))
	return hex.EncodeToString(sum[:4])
}
