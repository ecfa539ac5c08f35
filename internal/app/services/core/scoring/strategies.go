package scoring

import (
	"math"
	"sort"

	"anamnese-service/internal/app/models"
	"anamnese-service/internal/pkg/exceptions"
)

// Score reduces the answers of the active set into one SessionScore per
// scorable session plus an optional questionnaire-level total. Answers are
// validated against the definition first; scoring never proceeds over
// inconsistent data.
func (e *Engine) Score(definition *models.Questionnaire, answers map[string]models.Answer, activeSet models.ActiveSet) (*models.ScoreResult, error) {
	idx := buildIndex(definition)

	if err := e.validateAnswers(idx, answers); err != nil {
		return nil, err
	}

	result := &models.ScoreResult{
		QuestionnaireID: definition.ID,
		Sessions:        make(map[string]models.SessionScore),
	}

	for si := range definition.Sessions {
		session := &definition.Sessions[si]
		if !activeSet.HasSession(session.ID) {
			continue
		}
		sessionScore, scored := e.scoreSession(idx, session, answers, activeSet)
		if scored {
			result.Sessions[session.ID] = sessionScore
		}
	}

	var total float64
	var hasNumeric bool
	for _, sessionScore := range result.Sessions {
		if sessionScore.Method.Numeric() && sessionScore.Value != nil {
			total += *sessionScore.Value
			hasNumeric = true
		}
	}
	if hasNumeric {
		result.QuestionnaireValue = &total
	}
	return result, nil
}

// validateAnswers rejects answers that reference a question or choice
// outside the definition. Stale answers for inactive sessions are still
// checked; they remain part of the battery even when excluded from
// aggregates.
func (e *Engine) validateAnswers(idx *definitionIndex, answers map[string]models.Answer) error {
	questionIDs := make([]string, 0, len(answers))
	for questionID := range answers {
		questionIDs = append(questionIDs, questionID)
	}
	sort.Strings(questionIDs)

	for _, questionID := range questionIDs {
		if _, ok := idx.questions[questionID]; !ok {
			return exceptions.ErrUnknownAnswerQuestion(questionID)
		}
		for _, choiceID := range answers[questionID].SelectedChoiceIDs() {
			if idx.choice(questionID, choiceID) == nil {
				return exceptions.ErrInvalidAnswerReference(questionID, choiceID)
			}
		}
	}
	return nil
}

// scoreSession dispatches on the session's scoring method. The second
// return value is false for sessions whose questions carry no method,
// which are excluded from any aggregate.
func (e *Engine) scoreSession(idx *definitionIndex, session *models.Session, answers map[string]models.Answer, activeSet models.ActiveSet) (models.SessionScore, bool) {
	method := sessionMethod(session)
	if method == models.ScoringMethodNone {
		return models.SessionScore{}, false
	}

	score := models.SessionScore{
		SessionID: session.ID,
		Method:    method,
	}

	switch method {
	case models.ScoringMethodSumItem:
		value := e.sumSelectedValues(idx, session, answers, activeSet)
		score.Value = &value
	case models.ScoringMethodSumAverageSession:
		value := e.sumSelectedValues(idx, session, answers, activeSet)
		count := e.countThresholdChoices(idx, session, answers, activeSet)
		score.Value = &value
		score.ThresholdCount = &count
	case models.ScoringMethodDevelopmentLevel:
		score.Value = e.meanSelectedValues(idx, session, answers, activeSet)
	case models.ScoringMethodModeItems:
		score.Value = e.modeSelectedValues(idx, session, answers, activeSet)
	case models.ScoringMethodQualitative:
		score.Qualitative = e.collectQualitative(session, answers, activeSet)
	}
	return score, true
}

// sessionMethod returns the single non-none method of the session's
// questions; definition validation guarantees homogeneity.
func sessionMethod(session *models.Session) models.ScoringMethod {
	for qi := range session.Questions {
		if session.Questions[qi].ScoringMethod != models.ScoringMethodNone {
			return session.Questions[qi].ScoringMethod
		}
	}
	return models.ScoringMethodNone
}

// scorableAnswer returns the answer for a question when the question is
// active, scorable and answered. Unanswered optional questions are simply
// skipped by the aggregates, not treated as missing.
func scorableAnswer(question *models.Question, answers map[string]models.Answer, activeSet models.ActiveSet) (models.Answer, bool) {
	if question.ScoringMethod == models.ScoringMethodNone {
		return models.Answer{}, false
	}
	if !activeSet.HasQuestion(question.ID) {
		return models.Answer{}, false
	}
	answer, ok := answers[question.ID]
	if !ok || answer.Empty() {
		return models.Answer{}, false
	}
	return answer, true
}

func (e *Engine) sumSelectedValues(idx *definitionIndex, session *models.Session, answers map[string]models.Answer, activeSet models.ActiveSet) float64 {
	var sum float64
	for qi := range session.Questions {
		question := &session.Questions[qi]
		answer, ok := scorableAnswer(question, answers, activeSet)
		if !ok {
			continue
		}
		for _, choiceID := range answer.SelectedChoiceIDs() {
			sum += idx.choice(question.ID, choiceID).Value
		}
	}
	return sum
}

// countThresholdChoices tallies answered choices flagged as clinically
// positive. Shaded choices stay out of the tally: on threshold scales the
// shading marks the exceptional, not-scored-the-same-way options.
func (e *Engine) countThresholdChoices(idx *definitionIndex, session *models.Session, answers map[string]models.Answer, activeSet models.ActiveSet) int {
	var count int
	for qi := range session.Questions {
		question := &session.Questions[qi]
		answer, ok := scorableAnswer(question, answers, activeSet)
		if !ok {
			continue
		}
		for _, choiceID := range answer.SelectedChoiceIDs() {
			choice := idx.choice(question.ID, choiceID)
			if choice.IsPositiveThreshold && !choice.IsShaded {
				count++
			}
		}
	}
	return count
}

// meanSelectedValues averages the ordinal values of answered questions. A
// development level represents a stage of ability, so it is averaged and
// rounded to two decimals, never summed.
func (e *Engine) meanSelectedValues(idx *definitionIndex, session *models.Session, answers map[string]models.Answer, activeSet models.ActiveSet) *float64 {
	var sum float64
	var count int
	for qi := range session.Questions {
		question := &session.Questions[qi]
		answer, ok := scorableAnswer(question, answers, activeSet)
		if !ok {
			continue
		}
		for _, choiceID := range answer.SelectedChoiceIDs() {
			sum += idx.choice(question.ID, choiceID).Value
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := math.Round(sum/float64(count)*100) / 100
	return &mean
}

// modeSelectedValues returns the most frequent answered value. Ties break
// toward the highest value so the more severe outcome is never
// under-reported.
func (e *Engine) modeSelectedValues(idx *definitionIndex, session *models.Session, answers map[string]models.Answer, activeSet models.ActiveSet) *float64 {
	counts := make(map[float64]int)
	for qi := range session.Questions {
		question := &session.Questions[qi]
		answer, ok := scorableAnswer(question, answers, activeSet)
		if !ok {
			continue
		}
		for _, choiceID := range answer.SelectedChoiceIDs() {
			counts[idx.choice(question.ID, choiceID).Value]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	var mode float64
	var best int
	for value, count := range counts {
		if count > best || (count == best && value > mode) {
			mode = value
			best = count
		}
	}
	return &mode
}

func (e *Engine) collectQualitative(session *models.Session, answers map[string]models.Answer, activeSet models.ActiveSet) map[string]string {
	texts := make(map[string]string)
	for qi := range session.Questions {
		question := &session.Questions[qi]
		answer, ok := scorableAnswer(question, answers, activeSet)
		if !ok || answer.Text == "" {
			continue
		}
		texts[question.ID] = answer.Text
	}
	return texts
}
