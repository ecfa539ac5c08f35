package scoring

import (
	"anamnese-service/internal/app/models"
)

// Evaluate computes the ordered subset of sessions and questions that are
// currently applicable. Sessions without a rule are always active;
// questions inherit their session's activation. The evaluation is total:
// a rule over an unanswered question resolves to false (except the
// answered/not_answered operators), never to an error, so it can be rerun
// safely after every answer mutation.
func (e *Engine) Evaluate(definition *models.Questionnaire, answers map[string]models.Answer) models.ActiveSet {
	idx := buildIndex(definition)

	active := make([]models.ActiveSession, 0, len(definition.Sessions))
	for si := range definition.Sessions {
		session := &definition.Sessions[si]
		if session.VisibilityRule != nil && !e.evalRule(idx, session.VisibilityRule, answers) {
			continue
		}
		questionIDs := make([]string, 0, len(session.Questions))
		for qi := range session.Questions {
			questionIDs = append(questionIDs, session.Questions[qi].ID)
		}
		active = append(active, models.ActiveSession{
			SessionID:   session.ID,
			QuestionIDs: questionIDs,
		})
	}
	return models.NewActiveSet(active)
}

func (e *Engine) evalRule(idx *definitionIndex, rule *models.VisibilityRule, answers map[string]models.Answer) bool {
	if !rule.IsLeaf() {
		for i := range rule.All {
			if !e.evalRule(idx, &rule.All[i], answers) {
				return false
			}
		}
		for i := range rule.Any {
			if e.evalRule(idx, &rule.Any[i], answers) {
				return true
			}
		}
		return len(rule.Any) == 0
	}
	return e.evalLeaf(idx, rule, answers)
}

func (e *Engine) evalLeaf(idx *definitionIndex, leaf *models.VisibilityRule, answers map[string]models.Answer) bool {
	answer, ok := answers[leaf.QuestionID]
	answered := ok && !answer.Empty()

	switch leaf.Operator {
	case models.RuleOperatorAnswered:
		return answered
	case models.RuleOperatorNotAnswered:
		return !answered
	}

	// Every other operator needs an answer to compare against.
	if !answered {
		return false
	}

	switch leaf.Operator {
	case models.RuleOperatorEquals:
		selected := answer.SelectedChoiceIDs()
		return len(selected) == 1 && selected[0] == leaf.ChoiceID
	case models.RuleOperatorNotEquals:
		selected := answer.SelectedChoiceIDs()
		return len(selected) != 1 || selected[0] != leaf.ChoiceID
	case models.RuleOperatorIn:
		for _, selectedID := range answer.SelectedChoiceIDs() {
			for _, candidateID := range leaf.ChoiceIDs {
				if selectedID == candidateID {
					return true
				}
			}
		}
		return false
	case models.RuleOperatorGreaterThan:
		value, ok := e.numericAnswerValue(idx, leaf.QuestionID, answer)
		return ok && leaf.Number != nil && value > *leaf.Number
	case models.RuleOperatorLessThan:
		value, ok := e.numericAnswerValue(idx, leaf.QuestionID, answer)
		return ok && leaf.Number != nil && value < *leaf.Number
	}
	return false
}

// numericAnswerValue reduces an answer to a single number: the raw number
// for numeric questions, otherwise the sum of the selected choice values.
// A selection referencing an unknown choice yields no value here; answer
// consistency is enforced by scoring, visibility must stay total.
func (e *Engine) numericAnswerValue(idx *definitionIndex, questionID string, answer models.Answer) (float64, bool) {
	if answer.Number != nil {
		return *answer.Number, true
	}
	selected := answer.SelectedChoiceIDs()
	if len(selected) == 0 {
		return 0, false
	}
	var sum float64
	for _, choiceID := range selected {
		choice := idx.choice(questionID, choiceID)
		if choice == nil {
			return 0, false
		}
		sum += choice.Value
	}
	return sum, true
}
