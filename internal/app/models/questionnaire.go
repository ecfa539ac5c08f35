package models

// ResponseKind enumerates how a question is answered.
type ResponseKind string

const (
	ResponseKindBoolean      ResponseKind = "boolean"
	ResponseKindCustomScale  ResponseKind = "custom-scale"
	ResponseKindFreeText     ResponseKind = "free-text"
	ResponseKindNumeric      ResponseKind = "numeric"
	ResponseKindSingleChoice ResponseKind = "single-choice"
	ResponseKindMultiChoice  ResponseKind = "multi-choice"
)

func (k ResponseKind) Valid() bool {
	switch k {
	case ResponseKindBoolean, ResponseKindCustomScale, ResponseKindFreeText,
		ResponseKindNumeric, ResponseKindSingleChoice, ResponseKindMultiChoice:
		return true
	}
	return false
}

// ChoiceBased reports whether answers to this kind select choices rather
// than carry free text or a number.
func (k ResponseKind) ChoiceBased() bool {
	switch k {
	case ResponseKindBoolean, ResponseKindCustomScale, ResponseKindSingleChoice, ResponseKindMultiChoice:
		return true
	}
	return false
}

// ScoringMethod enumerates how answers to a question are reduced into a
// session aggregate. Unrecognized values are rejected when the definition
// is loaded, never defaulted.
type ScoringMethod string

const (
	ScoringMethodSumItem           ScoringMethod = "sum-item"
	ScoringMethodSumAverageSession ScoringMethod = "sum-average-session"
	ScoringMethodDevelopmentLevel  ScoringMethod = "development-level"
	ScoringMethodModeItems         ScoringMethod = "mode-items"
	ScoringMethodQualitative       ScoringMethod = "qualitative"
	ScoringMethodNone              ScoringMethod = "none"
)

func (m ScoringMethod) Valid() bool {
	switch m {
	case ScoringMethodSumItem, ScoringMethodSumAverageSession, ScoringMethodDevelopmentLevel,
		ScoringMethodModeItems, ScoringMethodQualitative, ScoringMethodNone:
		return true
	}
	return false
}

// Numeric reports whether the method produces a value that can be combined
// into a questionnaire-level total.
func (m ScoringMethod) Numeric() bool {
	switch m {
	case ScoringMethodSumItem, ScoringMethodSumAverageSession, ScoringMethodDevelopmentLevel:
		return true
	}
	return false
}

type Questionnaire struct {
	ID       string    `json:"id,omitempty" bson:"_id,omitempty"`
	Title    string    `json:"title" bson:"title"`
	Sessions []Session `json:"sessions" bson:"sessions"`
}

type Session struct {
	ID             string          `json:"id" bson:"id"`
	Title          string          `json:"title" bson:"title"`
	Order          int             `json:"order" bson:"order"`
	VisibilityRule *VisibilityRule `json:"visibility_rule,omitempty" bson:"visibility_rule,omitempty"`
	Questions      []Question      `json:"questions" bson:"questions"`
}

type Question struct {
	ID            string        `json:"id" bson:"id"`
	Text          string        `json:"text" bson:"text"`
	Order         int           `json:"order" bson:"order"`
	ResponseKind  ResponseKind  `json:"response_kind" bson:"response_kind"`
	ScoringMethod ScoringMethod `json:"scoring_method" bson:"scoring_method"`
	Required      bool          `json:"required" bson:"required"`
	Choices       []Choice      `json:"choices,omitempty" bson:"choices,omitempty"`
}

type Choice struct {
	ID    string  `json:"id" bson:"id"`
	Label string  `json:"label" bson:"label"`
	Value float64 `json:"value" bson:"value"`
	// IsShaded marks an exceptional option that is visually de-emphasized.
	IsShaded bool `json:"is_shaded,omitempty" bson:"is_shaded,omitempty"`
	// IsPositiveThreshold marks the option as counting toward the clinical
	// cut-off tally of threshold scales such as SNAP-IV and ASRS.
	IsPositiveThreshold bool `json:"is_positive_threshold,omitempty" bson:"is_positive_threshold,omitempty"`
}
