// kbgen/pkg/karabiner/digest.go

package karabiner

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest fingerprints an encoded document as 16 hex digits of xxhash64.
func Digest(doc []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(doc))
}
