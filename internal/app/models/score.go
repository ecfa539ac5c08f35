package models

// ActiveSession is one visible session and the ordered questions that must
// currently be shown and answered.
type ActiveSession struct {
	SessionID   string   `json:"session_id"`
	QuestionIDs []string `json:"question_ids"`
}

// ActiveSet is the ordered subset of a definition that is applicable given
// the answers gathered so far.
type ActiveSet struct {
	Sessions []ActiveSession `json:"sessions"`

	sessionIndex  map[string]int
	questionIndex map[string]string
}

// NewActiveSet builds an ActiveSet with its lookup indexes.
func NewActiveSet(sessions []ActiveSession) ActiveSet {
	set := ActiveSet{
		Sessions:      sessions,
		sessionIndex:  make(map[string]int, len(sessions)),
		questionIndex: make(map[string]string),
	}
	for i, session := range sessions {
		set.sessionIndex[session.SessionID] = i
		for _, questionID := range session.QuestionIDs {
			set.questionIndex[questionID] = session.SessionID
		}
	}
	return set
}

func (s ActiveSet) HasSession(sessionID string) bool {
	_, ok := s.sessionIndex[sessionID]
	return ok
}

func (s ActiveSet) HasQuestion(questionID string) bool {
	_, ok := s.questionIndex[questionID]
	return ok
}

// SessionScore is the reduced result of one session. Value is nil for
// qualitative sessions and for sessions with no scorable answers.
type SessionScore struct {
	SessionID string        `json:"session_id"`
	Method    ScoringMethod `json:"method"`
	Value     *float64      `json:"value,omitempty"`
	// ThresholdCount is populated by sum-average-session only: the number
	// of answered choices flagged as clinically positive.
	ThresholdCount *int `json:"threshold_count,omitempty"`
	// Qualitative carries free-text answers verbatim, keyed by question id,
	// for downstream human review.
	Qualitative map[string]string `json:"raw_qualitative,omitempty"`
}

// ScoreResult is derived on demand from a definition and a battery. It is
// never a source of truth and is fully re-derivable from its inputs.
type ScoreResult struct {
	QuestionnaireID string                  `json:"questionnaire_id"`
	Sessions        map[string]SessionScore `json:"sessions"`
	// QuestionnaireValue is the sum of the numerically comparable session
	// scores, nil when no session produces a comparable value. Qualitative
	// sessions are surfaced in Sessions, never folded into this total.
	QuestionnaireValue *float64 `json:"questionnaire_value,omitempty"`
}

// Completion reports whether every required active question is answered.
// MissingQuestionIDs preserves definition order for predictable prompting.
type Completion struct {
	Complete           bool     `json:"complete"`
	MissingQuestionIDs []string `json:"missing_question_ids"`
}
