package enums

// PlanStyle enumerates the architectural styles the catalog is seeded with.
// Search treats style as a free-form equality, so unknown values are allowed
// in filters; this list exists for seeds and UI dropdowns.
type PlanStyle string

const (
	PlanStyleModern        PlanStyle = "modern"
	PlanStyleTraditional   PlanStyle = "traditional"
	PlanStyleColonial      PlanStyle = "colonial"
	PlanStyleMediterranean PlanStyle = "mediterranean"
)

// String implements fmt.Stringer.
func (s PlanStyle) String() string {
	return string(s)
}
