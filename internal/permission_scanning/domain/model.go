package domain

import "time"

// Predicate reports whether a rule applies to the given contract source.
type Predicate func(source string) bool

// Rule is one entry of the scanner's rule table.
type Rule struct {
	ID       RuleID
	Severity Severity
	Message  string
	Match    Predicate
}

type Finding struct {
	RuleID   RuleID   `json:"id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ScanReport is built fresh for every scan and never stored.
type ScanReport struct {
	Score      int       `json:"score"`
	Issues     []string  `json:"issues"`
	ReviewedAt time.Time `json:"reviewedAt"`
	Findings   []Finding `json:"findings"`
}
