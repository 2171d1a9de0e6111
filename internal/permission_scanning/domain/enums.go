package domain

type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeverityWarning Severity = "WARNING"
)

type RuleID string

const (
	RuleApprove      RuleID = "approve"
	RuleDevWallet    RuleID = "dev-wallet"
	RuleTransferFrom RuleID = "transfer-from"
	RuleLowLevelCall RuleID = "low-level-call"
)

// NoIssuesMessage is the only issue reported when no rule matched.
const NoIssuesMessage = "no issues detected"
