package domain

import "errors"

var (
	ErrEmptyRuleID     = errors.New("rule id is empty")
	ErrDuplicateRuleID = errors.New("duplicate rule id")
	ErrNilPredicate    = errors.New("rule predicate is nil")
)
