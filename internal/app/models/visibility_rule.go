package models

// RuleOperator is the comparison applied by a visibility rule leaf.
type RuleOperator string

const (
	RuleOperatorEquals      RuleOperator = "equals"
	RuleOperatorNotEquals   RuleOperator = "not_equals"
	RuleOperatorIn          RuleOperator = "in"
	RuleOperatorGreaterThan RuleOperator = "greater_than"
	RuleOperatorLessThan    RuleOperator = "less_than"
	RuleOperatorAnswered    RuleOperator = "answered"
	RuleOperatorNotAnswered RuleOperator = "not_answered"
)

func (op RuleOperator) Valid() bool {
	switch op {
	case RuleOperatorEquals, RuleOperatorNotEquals, RuleOperatorIn,
		RuleOperatorGreaterThan, RuleOperatorLessThan,
		RuleOperatorAnswered, RuleOperatorNotAnswered:
		return true
	}
	return false
}

// VisibilityRule is a predicate tree over earlier answers. A node is either
// a composite (exactly one of All/Any populated) or a leaf comparing the
// answer of QuestionID. The stored JSON blob deserializes straight into
// this shape; the rule's semantics live in the evaluator, not in the
// serialization.
type VisibilityRule struct {
	All []VisibilityRule `json:"all,omitempty" bson:"all,omitempty"`
	Any []VisibilityRule `json:"any,omitempty" bson:"any,omitempty"`

	QuestionID string       `json:"question_id,omitempty" bson:"question_id,omitempty"`
	Operator   RuleOperator `json:"operator,omitempty" bson:"operator,omitempty"`
	// ChoiceID is compared by equals/not_equals, ChoiceIDs by in.
	ChoiceID  string   `json:"choice_id,omitempty" bson:"choice_id,omitempty"`
	ChoiceIDs []string `json:"choice_ids,omitempty" bson:"choice_ids,omitempty"`
	// Number is compared by greater_than/less_than against the numeric
	// value of the referenced answer.
	Number *float64 `json:"number,omitempty" bson:"number,omitempty"`
}

// IsLeaf reports whether the node carries a comparison rather than
// composing child rules.
func (r *VisibilityRule) IsLeaf() bool {
	return len(r.All) == 0 && len(r.Any) == 0
}

// ReferencedQuestionIDs walks the tree and collects every question id a
// leaf compares against, in tree order.
func (r *VisibilityRule) ReferencedQuestionIDs() []string {
	if r == nil {
		return nil
	}
	if r.IsLeaf() {
		return []string{r.QuestionID}
	}
	var ids []string
	for i := range r.All {
		ids = append(ids, r.All[i].ReferencedQuestionIDs()...)
	}
	for i := range r.Any {
		ids = append(ids, r.Any[i].ReferencedQuestionIDs()...)
	}
	return ids
}
