package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTenantSlug(t *testing.T) {
	valid := []string{"acme", "globex", "a", "tenant_2", "x1_y2_z3"}
	for _, slug := range valid {
		assert.True(t, ValidTenantSlug(slug), "expected %q to be valid", slug)
	}

	invalid := []string{
		"",
		"Acme",
		"1acme",
		"_acme",
		"acme-corp",
		"acme corp",
		"acme;drop schema public",
		`acme","public; --`,
		"acme\x00",
		"a" + strings.Repeat("b", 63),
	}
	for _, slug := range invalid {
		assert.False(t, ValidTenantSlug(slug), "expected %q to be invalid", slug)
	}
}
