package tier

import "fmt"

// Tier is a plan capability level. Tiers form a total order:
// free < premium < business < super.
type Tier string

const (
	Free     Tier = "free"
	Premium  Tier = "premium"
	Business Tier = "business"
	Super    Tier = "super"
)

var ranks = map[Tier]int{
	Free:     0,
	Premium:  1,
	Business: 2,
	Super:    3,
}

// Parse validates a tier label. Unknown labels are an error, never a
// silent downgrade to free.
func Parse(s string) (Tier, error) {
	t := Tier(s)
	if _, ok := ranks[t]; !ok {
		return "", fmt.Errorf("unknown tier %q", s)
	}
	return t, nil
}

func (t Tier) Valid() bool {
	_, ok := ranks[t]
	return ok
}

// Rank returns the position of t in the tier order, -1 for unknown labels.
func (t Tier) Rank() int {
	r, ok := ranks[t]
	if !ok {
		return -1
	}
	return r
}

// Covers reports whether a plan on tier current grants access to a
// resource requiring tier required. Either label being unknown denies.
func Covers(current, required Tier) bool {
	cr, ok := ranks[current]
	if !ok {
		return false
	}
	rr, ok := ranks[required]
	if !ok {
		return false
	}
	return cr >= rr
}

// All lists the tiers in ascending order of capability.
func All() []Tier {
	return []Tier{Free, Premium, Business, Super}
}
