package model

import (
	"encoding/json"
	"math"
	"strings"

	"fornsaga-backend/internal/apperrors"
)

// AnswerKey is the typed view over Question.CorrectAnswer. Each question
// type gets its own variant so matching never has to sniff the raw text.
type AnswerKey interface {
	// Matches reports whether a submitted raw answer is correct. It
	// returns a validation error when the submitted value cannot be
	// decoded for this key's question type.
	Matches(submitted string) (bool, error)
}

// ExactKey matches by exact string equality: multiple choice and
// true/false (index strings), timeline ordering and image recognition.
type ExactKey struct {
	Value string
}

func (k ExactKey) Matches(submitted string) (bool, error) {
	return submitted == k.Value, nil
}

// TextKey matches free text answers, case-folded and trimmed on both sides.
type TextKey struct {
	Value string
}

func (k TextKey) Matches(submitted string) (bool, error) {
	return normalizeText(submitted) == normalizeText(k.Value), nil
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Coordinate is a {"lat","lng"} pair as submitted for map questions.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CoordinateKey matches map identification answers: each axis delta must be
// strictly within ToleranceDegrees.
type CoordinateKey struct {
	Correct          Coordinate
	ToleranceDegrees float64
}

func (k CoordinateKey) Matches(submitted string) (bool, error) {
	var got Coordinate
	if err := json.Unmarshal([]byte(submitted), &got); err != nil {
		return false, apperrors.Validationf("malformed coordinate answer %q", submitted)
	}
	return math.Abs(got.Lat-k.Correct.Lat) < k.ToleranceDegrees &&
		math.Abs(got.Lng-k.Correct.Lng) < k.ToleranceDegrees, nil
}

// AnswerKeyFor builds the typed key for a question. A stored correct answer
// that cannot be decoded for the question's type is a data integrity error.
func AnswerKeyFor(q *Question, mapTolerance float64) (AnswerKey, error) {
	switch q.QuestionType {
	case QuestionMultipleChoice, QuestionTrueFalse, QuestionTimelineOrder, QuestionImageRecognition:
		return ExactKey{Value: q.CorrectAnswer}, nil
	case QuestionFillBlank:
		return TextKey{Value: q.CorrectAnswer}, nil
	case QuestionMapIdentification:
		var correct Coordinate
		if err := json.Unmarshal([]byte(q.CorrectAnswer), &correct); err != nil {
			return nil, apperrors.DataIntegrityf("question %d: stored coordinate key is not valid JSON", q.ID)
		}
		return CoordinateKey{Correct: correct, ToleranceDegrees: mapTolerance}, nil
	default:
		return nil, apperrors.DataIntegrityf("question %d: unknown question type %q", q.ID, q.QuestionType)
	}
}

// OptionList decodes the serialized option strings of a choice question.
func (q *Question) OptionList() ([]string, error) {
	if q.Options == "" {
		return nil, nil
	}
	var opts []string
	if err := json.Unmarshal([]byte(q.Options), &opts); err != nil {
		return nil, apperrors.DataIntegrityf("question %d: options are not a JSON array", q.ID)
	}
	return opts, nil
}

// SetOptionList serializes option strings into the stored form.
func (q *Question) SetOptionList(opts []string) error {
	data, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	q.Options = string(data)
	return nil
}
