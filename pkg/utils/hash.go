package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

const (
	ShortHashLength = 10
	CardExtension   = ".png"
	cardKeySep      = "::"
)

// ShortHash returns the first ShortHashLength hex characters of the SHA-1 of s.
// The truncation only keeps filenames short; it is not meant to resist collisions.
func ShortHash(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:ShortHashLength]
}

// CardFilename names the rendered card for an item on a template. Equal inputs
// always give the same name, so reruns overwrite their own earlier output.
func CardFilename(itemName, templateID string) string {
	return ShortHash(strings.Join([]string{itemName, templateID}, cardKeySep)) + CardExtension
}
