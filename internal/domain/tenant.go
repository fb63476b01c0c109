package domain

import "regexp"

// tenantSlugPattern matches the schema identifiers we are willing to switch
// the search path to. Anything else never reaches a SQL statement.
var tenantSlugPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// ValidTenantSlug checks if slug is safe to use as a Postgres schema identifier.
func ValidTenantSlug(slug string) bool {
	return tenantSlugPattern.MatchString(slug)
}
