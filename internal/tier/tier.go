package tier

import (
	"fmt"
	"strings"
)

// Tier is a subscription level. Tiers are totally ordered: basic < advanced < premium.
type Tier string

const (
	Basic    Tier = "basic"
	Advanced Tier = "advanced"
	Premium  Tier = "premium"
)

var ranks = map[Tier]int{
	Basic:    1,
	Advanced: 2,
	Premium:  3,
}

// All returns the tiers in ascending order.
func All() []Tier {
	return []Tier{Basic, Advanced, Premium}
}

// Rank returns the position of t in the tier order, or 0 for an unknown tier.
func Rank(t Tier) int {
	return ranks[t]
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	_, ok := ranks[t]
	return ok
}

func (t Tier) String() string {
	return string(t)
}

// Parse converts a stored tier string. An empty value means the user never
// upgraded and is treated as basic.
func Parse(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Basic, nil
	}
	t := Tier(s)
	if !t.Valid() {
		return Basic, fmt.Errorf("unknown subscription tier %q", s)
	}
	return t, nil
}

// OrBasic is Parse without the error: unknown values degrade to basic.
func OrBasic(s string) Tier {
	t, _ := Parse(s)
	return t
}

// CanAccess reports whether a user on userTier may see a resource that
// requires requiredTier.
func CanAccess(userTier, requiredTier Tier) bool {
	return Rank(userTier) >= Rank(requiredTier)
}

// CanViewPage applies the free preview carve-out for paged documents: the
// first previewPages pages are open to everyone.
func CanViewPage(userTier, requiredTier Tier, page, previewPages int) bool {
	if page < 1 {
		return false
	}
	return page <= previewPages || CanAccess(userTier, requiredTier)
}

// GateError is returned when a resource is locked behind a higher tier.
type GateError struct {
	Resource string
	Required Tier
	Current  Tier
}

func (e GateError) Error() string {
	return fmt.Sprintf("%s requires %s subscription (currently %s)", e.Resource, e.Required, e.Current)
}

// Check returns a GateError when userTier cannot access requiredTier.
func Check(resource string, userTier, requiredTier Tier) error {
	if CanAccess(userTier, requiredTier) {
		return nil
	}
	return GateError{Resource: resource, Required: requiredTier, Current: userTier}
}
