package catalog

import (
	"sort"

	"github.com/blockguard/blockguard-backend/internal/attack_education/domain"
)

// Catalog is a read-only set of exploit templates plus the malware sample.
// Build it once at startup and share it.
type Catalog struct {
	templates map[string]domain.ExploitTemplate
	malware   domain.MalwareSample
}

// New keys templates by their Type. A later template with the same Type
// replaces an earlier one.
func New(malware domain.MalwareSample, templates ...domain.ExploitTemplate) *Catalog {
	m := make(map[string]domain.ExploitTemplate, len(templates))
	for _, t := range templates {
		m[t.Type] = t
	}
	return &Catalog{templates: m, malware: malware}
}

func Default() *Catalog {
	return New(approvalHook(), reentrancy())
}

// Lookup is an exact, case-sensitive match on the attack type.
func (c *Catalog) Lookup(attackType string) (domain.ExploitTemplate, error) {
	t, ok := c.templates[attackType]
	if !ok {
		return domain.ExploitTemplate{}, domain.ErrUnknownAttackType
	}
	return t, nil
}

// Types lists the known attack types, sorted.
func (c *Catalog) Types() []string {
	out := make([]string, 0, len(c.templates))
	for k := range c.templates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) Malware() domain.MalwareSample {
	return c.malware
}
