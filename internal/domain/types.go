package domain

// Category identifies the interview track a practice question belongs to.
// The set is closed: the UI offers exactly these five options.
type Category string

const (
	CategoryHR          Category = "HR (Human Resources)"
	CategoryTechnical   Category = "Technical (Software Engineering)"
	CategoryBehavioral  Category = "Behavioral (STAR Method)"
	CategoryProduct     Category = "Product Management"
	CategoryDataScience Category = "Data Science"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryHR,
		CategoryTechnical,
		CategoryBehavioral,
		CategoryProduct,
		CategoryDataScience,
	}
}

// ParseCategory maps a raw string onto the closed set.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// FailureKind classifies why a feedback request did not produce text.
type FailureKind string

const (
	FailureInvalidInput FailureKind = "invalid_input"
	FailureNetwork      FailureKind = "network_error"
	FailureParse        FailureKind = "parse_error"
	FailureSchema       FailureKind = "schema_error"
)
