package pgutil

import "errors"

// SQLSTATE codes the stores react to.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
)

// fielder is satisfied by pgdriver.Error.
type fielder interface {
	Field(k byte) string
}

// SQLState returns the SQLSTATE code carried by err, or "" when err did not
// come from the server.
func SQLState(err error) string {
	var pgErr fielder
	if errors.As(err, &pgErr) {
		return pgErr.Field('C')
	}
	return ""
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return SQLState(err) == CodeUniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return SQLState(err) == CodeForeignKeyViolation
}

// ConstraintName returns the violated constraint name when err carries one.
func ConstraintName(err error) string {
	var pgErr fielder
	if errors.As(err, &pgErr) {
		return pgErr.Field('n')
	}
	return ""
}
