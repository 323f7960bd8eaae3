package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storely/ecommerce_backend/utils"
)

func TestGenerateSessionToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := utils.GenerateSessionToken()
		assert.Len(t, token, 32)
		assert.NotContains(t, token, "-")
		assert.False(t, seen[token], "token collision")
		seen[token] = true
	}
}
