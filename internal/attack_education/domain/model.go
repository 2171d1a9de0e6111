package domain

// ExploitTemplate is an illustrative vulnerable/attacker contract pair.
type ExploitTemplate struct {
	Type               string `json:"-"`
	VulnerableContract string `json:"vulnerableContract"`
	AttackerContract   string `json:"attackerContract"`
	Explanation        string `json:"explanation"`
}

// MalwareSample is a real-world style malicious contract shown for education.
type MalwareSample struct {
	Type          string `json:"type"`
	MaliciousCode string `json:"maliciousCode"`
	HowItWorks    string `json:"howItWorks"`
	ProtectionTip string `json:"protectionTip"`
}

const AttackReentrancy = "reentrancy"
