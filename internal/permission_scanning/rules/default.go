package rules

import (
	"strings"

	"github.com/blockguard/blockguard-backend/internal/permission_scanning/domain"
)

// Contains matches when the source holds needle verbatim. No tokenization,
// no case folding.
func Contains(needle string) domain.Predicate {
	return func(source string) bool {
		return strings.Contains(source, needle)
	}
}

func approve() domain.Rule {
	return domain.Rule{
		ID:       domain.RuleApprove,
		Severity: domain.SeverityWarning,
		Message:  "uses approve() — check if it grants unlimited access.",
		Match:    Contains("approve"),
	}
}

func devWallet() domain.Rule {
	return domain.Rule{
		ID:       domain.RuleDevWallet,
		Severity: domain.SeverityWarning,
		Message:  "references devWallet — check if it can transfer user funds.",
		Match:    Contains("devWallet"),
	}
}

func transferFrom() domain.Rule {
	return domain.Rule{
		ID:       domain.RuleTransferFrom,
		Severity: domain.SeverityWarning,
		Message:  "uses transferFrom() — verify who is authorized to call this.",
		Match:    Contains("transferFrom"),
	}
}

func lowLevelCall() domain.Rule {
	return domain.Rule{
		ID:       domain.RuleLowLevelCall,
		Severity: domain.SeverityWarning,
		Message:  "uses low-level call — may allow reentrancy or misuse.",
		Match:    Contains("call{"),
	}
}

// Default returns the permission rule table in evaluation order. Each call
// builds a new slice.
func Default() []domain.Rule {
	return []domain.Rule{
		approve(),
		devWallet(),
		transferFrom(),
		lowLevelCall(),
	}
}
