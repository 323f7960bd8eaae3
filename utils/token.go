// utils/token.go
package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateSessionToken returns an opaque, cryptographically random session
// token. The token carries no claims; authorization always goes through a
// store lookup.
func GenerateSessionToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
