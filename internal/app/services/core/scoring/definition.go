package scoring

import (
	"anamnese-service/internal/app/models"
	"anamnese-service/internal/pkg/exceptions"
)

// definitionIndex is a read-only lookup view over a questionnaire. It is
// rebuilt per call; definitions are small (tens of questions) and the
// engine must stay free of hidden state.
type definitionIndex struct {
	questions      map[string]*models.Question
	choices        map[string]map[string]*models.Choice
	sessionPos     map[string]int
	sessionOfQuest map[string]string
}

func buildIndex(definition *models.Questionnaire) *definitionIndex {
	idx := &definitionIndex{
		questions:      make(map[string]*models.Question),
		choices:        make(map[string]map[string]*models.Choice),
		sessionPos:     make(map[string]int),
		sessionOfQuest: make(map[string]string),
	}
	for si := range definition.Sessions {
		session := &definition.Sessions[si]
		idx.sessionPos[session.ID] = si
		for qi := range session.Questions {
			question := &session.Questions[qi]
			idx.questions[question.ID] = question
			idx.sessionOfQuest[question.ID] = session.ID
			choiceSet := make(map[string]*models.Choice, len(question.Choices))
			for ci := range question.Choices {
				choiceSet[question.Choices[ci].ID] = &question.Choices[ci]
			}
			idx.choices[question.ID] = choiceSet
		}
	}
	return idx
}

func (idx *definitionIndex) choice(questionID, choiceID string) *models.Choice {
	return idx.choices[questionID][choiceID]
}

// ValidateDefinition checks the structural rules a published questionnaire
// must satisfy. It runs once at load time; per-answer checks stay out of
// it so partial-progress evaluation never trips over definition problems.
func (e *Engine) ValidateDefinition(definition *models.Questionnaire) error {
	idx := buildIndex(definition)

	seenOrders := make(map[int]bool, len(definition.Sessions))
	for si := range definition.Sessions {
		session := &definition.Sessions[si]
		if seenOrders[session.Order] {
			return exceptions.ErrDuplicateSessionOrder(definition.ID, session.Order)
		}
		seenOrders[session.Order] = true

		sessionMethod := models.ScoringMethodNone
		for qi := range session.Questions {
			question := &session.Questions[qi]
			if !question.ScoringMethod.Valid() {
				return exceptions.ErrUnknownScoringMethod(question.ID, string(question.ScoringMethod))
			}
			if !question.ResponseKind.Valid() {
				return exceptions.ErrUnknownResponseKind(question.ID, string(question.ResponseKind))
			}
			if question.ScoringMethod == models.ScoringMethodNone {
				continue
			}
			if sessionMethod == models.ScoringMethodNone {
				sessionMethod = question.ScoringMethod
			} else if sessionMethod != question.ScoringMethod {
				return exceptions.ErrMixedScoringMethods(session.ID)
			}
		}

		if err := e.validateRule(idx, session, session.VisibilityRule); err != nil {
			return err
		}
	}
	return nil
}

// validateRule rejects rules whose leaves use an unknown operator or
// reference a question that is not in a strictly earlier session. Forward
// and self references would make activation order-dependent, so they are a
// definition error, caught here rather than per answer.
func (e *Engine) validateRule(idx *definitionIndex, session *models.Session, rule *models.VisibilityRule) error {
	if rule == nil {
		return nil
	}
	if !rule.IsLeaf() {
		for i := range rule.All {
			if err := e.validateRule(idx, session, &rule.All[i]); err != nil {
				return err
			}
		}
		for i := range rule.Any {
			if err := e.validateRule(idx, session, &rule.Any[i]); err != nil {
				return err
			}
		}
		return nil
	}

	if !rule.Operator.Valid() {
		return exceptions.ErrUnknownRuleOperator(session.ID, string(rule.Operator))
	}
	referencedSession, ok := idx.sessionOfQuest[rule.QuestionID]
	if !ok {
		return exceptions.ErrForwardVisibilityRule(session.ID, rule.QuestionID)
	}
	if idx.sessionPos[referencedSession] >= idx.sessionPos[session.ID] {
		return exceptions.ErrForwardVisibilityRule(session.ID, rule.QuestionID)
	}
	return nil
}
