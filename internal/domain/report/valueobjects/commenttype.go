package valueobjects

// CommentType classifies manager feedback on a daily report.
type CommentType string

const (
	CommentTypeProblem CommentType = "problem"
	CommentTypePlan    CommentType = "plan"
	CommentTypeGeneral CommentType = "general"
)

func (t CommentType) String() string {
	return string(t)
}

func (t CommentType) IsValid() bool {
	switch t {
	case CommentTypeProblem, CommentTypePlan, CommentTypeGeneral:
		return true
	}
	return false
}
