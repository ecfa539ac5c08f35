package scoring

import (
	"anamnese-service/internal/app/models"
)

// CheckCompletion reports whether every required question of the active
// set has a structurally valid answer. Because the active set itself
// depends on answers, callers recompute this after every mutation: a
// newly-revealed session adds required questions, a deactivated session
// drops its questions from the required set even when already answered.
func (e *Engine) CheckCompletion(definition *models.Questionnaire, answers map[string]models.Answer, activeSet models.ActiveSet) models.Completion {
	missing := make([]string, 0)

	for si := range definition.Sessions {
		session := &definition.Sessions[si]
		if !activeSet.HasSession(session.ID) {
			continue
		}
		for qi := range session.Questions {
			question := &session.Questions[qi]
			if !question.Required {
				continue
			}
			answer, ok := answers[question.ID]
			if !ok || !structurallyValid(question, answer) {
				missing = append(missing, question.ID)
			}
		}
	}

	return models.Completion{
		Complete:           len(missing) == 0,
		MissingQuestionIDs: missing,
	}
}

// structurallyValid checks that the answer payload matches the question's
// response kind. Consistency against the choice list is scoring's concern.
func structurallyValid(question *models.Question, answer models.Answer) bool {
	if answer.Empty() {
		return false
	}
	switch question.ResponseKind {
	case models.ResponseKindFreeText:
		return answer.Text != ""
	case models.ResponseKindNumeric:
		return answer.Number != nil
	default:
		return len(answer.SelectedChoiceIDs()) > 0
	}
}
