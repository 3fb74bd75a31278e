package postgres

import "strings"

// Helper functions for PostgreSQL error checking
func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
