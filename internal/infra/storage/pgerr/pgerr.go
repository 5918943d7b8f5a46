// Package pgerr распознает коды ошибок PostgreSQL из lib/pq
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation    = "23505"
	codeExclusionViolation = "23P01"
)

// IsExclusionViolation нарушение EXCLUDE-ограничения (пересечение интервалов мастера)
func IsExclusionViolation(err error) bool {
	return hasCode(err, codeExclusionViolation)
}

// IsUniqueViolation нарушение уникальности
func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

func hasCode(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
