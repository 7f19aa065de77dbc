package player

type RelationshipStatus int

const (
	Single RelationshipStatus = iota
	Dating
	Married
)

func (r RelationshipStatus) String() string {
	switch r {
	case Dating:
		return "Dating"
	case Married:
		return "Married"
	}
	return "Single"
}

type Child struct {
	ID          string
	BirthYear   int
	BirthMonth  int
	MonthlyCost float64
}

// Relationship only moves forward: Single, Dating, Married. Children are
// only ever appended.
type Relationship struct {
	Status            RelationshipStatus
	MonthlyDatingCost float64
	MonthlyFamilyCost float64
	Children          []Child
}

func (r Relationship) ChildrenCount() int { return len(r.Children) }
