package scanner

import (
	"fmt"
	"time"

	"github.com/blockguard/blockguard-backend/internal/permission_scanning/domain"
)

// Scanner runs a fixed rule table over contract source text. It holds no
// mutable state and is safe for concurrent use.
type Scanner struct {
	rules []domain.Rule
	now   func() time.Time
}

type Option func(*Scanner)

// WithClock overrides the clock used for ReviewedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Scanner) {
		if now != nil {
			s.now = now
		}
	}
}

// New copies rules so later changes to the caller's slice don't leak in.
func New(rules []domain.Rule, opts ...Option) (*Scanner, error) {
	seen := make(map[domain.RuleID]struct{}, len(rules))
	for i, r := range rules {
		if r.ID == "" {
			return nil, fmt.Errorf("rule %d: %w", i, domain.ErrEmptyRuleID)
		}
		if r.Match == nil {
			return nil, fmt.Errorf("rule %q: %w", r.ID, domain.ErrNilPredicate)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("rule %q: %w", r.ID, domain.ErrDuplicateRuleID)
		}
		seen[r.ID] = struct{}{}
	}

	s := &Scanner{
		rules: append([]domain.Rule(nil), rules...),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Scan never fails: any input, including the empty string, yields a report.
func (s *Scanner) Scan(source string) domain.ScanReport {
	issues := make([]string, 0, len(s.rules))
	findings := make([]domain.Finding, 0, len(s.rules))

	for _, r := range s.rules {
		if !r.Match(source) {
			continue
		}
		issues = append(issues, r.Message)
		findings = append(findings, domain.Finding{
			RuleID:   r.ID,
			Severity: r.Severity,
			Message:  r.Message,
		})
	}

	score := len(issues)
	if score == 0 {
		issues = []string{domain.NoIssuesMessage}
	}

	return domain.ScanReport{
		Score:      score,
		Issues:     issues,
		ReviewedAt: s.now().UTC(),
		Findings:   findings,
	}
}

// Rules returns a copy of the rule table in evaluation order.
func (s *Scanner) Rules() []domain.Rule {
	return append([]domain.Rule(nil), s.rules...)
}
