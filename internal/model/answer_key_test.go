package model

import (
	"testing"

	"fornsaga-backend/internal/apperrors"
)

func TestExactKeyMatches(t *testing.T) {
	key := ExactKey{Value: "2"}

	if ok, _ := key.Matches("2"); !ok {
		t.Error("exact value should match")
	}
	if ok, _ := key.Matches("3"); ok {
		t.Error("different value should not match")
	}
	// Choice answers are index strings; no trimming or folding applies.
	if ok, _ := key.Matches(" 2"); ok {
		t.Error("padded value should not match")
	}
}

func TestTextKeyNormalizes(t *testing.T) {
	key := TextKey{Value: "Seifur"}

	tests := []struct {
		submitted string
		want      bool
	}{
		{"Seifur", true},
		{"seifur", true},
		{"  SEIFUR  ", true},
		{"Óðinn", false},
		{"", false},
	}
	for _, tt := range tests {
		got, err := key.Matches(tt.submitted)
		if err != nil {
			t.Fatalf("Matches(%q): %v", tt.submitted, err)
		}
		if got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.submitted, got, tt.want)
		}
	}
}

func TestCoordinateKeyTolerance(t *testing.T) {
	key := CoordinateKey{
		Correct:          Coordinate{Lat: 64.0, Lng: -21.0},
		ToleranceDegrees: 5.0,
	}

	tests := []struct {
		name      string
		submitted string
		want      bool
	}{
		{"exact", `{"lat":64.0,"lng":-21.0}`, true},
		{"within tolerance", `{"lat":68.9,"lng":-16.1}`, true},
		{"lat outside", `{"lat":69.1,"lng":-21.0}`, false},
		{"lng outside", `{"lat":64.0,"lng":-15.9}`, false},
		{"boundary is exclusive", `{"lat":69.0,"lng":-21.0}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := key.Matches(tt.submitted)
			if err != nil {
				t.Fatalf("Matches(%q): %v", tt.submitted, err)
			}
			if got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.submitted, got, tt.want)
			}
		})
	}
}

func TestCoordinateKeyRejectsMalformedSubmission(t *testing.T) {
	key := CoordinateKey{Correct: Coordinate{Lat: 64, Lng: -21}, ToleranceDegrees: 5}

	_, err := key.Matches("not json")
	if err == nil {
		t.Fatal("expected an error for malformed input")
	}
	if !apperrors.IsValidation(err) {
		t.Errorf("error = %v, want a validation error", err)
	}
}

func TestAnswerKeyFor(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		submit   string
		want     bool
	}{
		{
			name:     "multiple choice",
			question: Question{QuestionType: QuestionMultipleChoice, CorrectAnswer: "1"},
			submit:   "1",
			want:     true,
		},
		{
			name:     "true false",
			question: Question{QuestionType: QuestionTrueFalse, CorrectAnswer: "0"},
			submit:   "1",
			want:     false,
		},
		{
			name:     "fill blank folds case",
			question: Question{QuestionType: QuestionFillBlank, CorrectAnswer: "Alþingi"},
			submit:   "alþingi",
			want:     true,
		},
		{
			name:     "timeline order is exact",
			question: Question{QuestionType: QuestionTimelineOrder, CorrectAnswer: "2,0,1,3"},
			submit:   "2,0,1,3",
			want:     true,
		},
		{
			name:     "map within tolerance",
			question: Question{QuestionType: QuestionMapIdentification, CorrectAnswer: `{"lat":41.9,"lng":12.5}`},
			submit:   `{"lat":40.0,"lng":14.0}`,
			want:     true,
		},
		{
			name:     "image recognition",
			question: Question{QuestionType: QuestionImageRecognition, CorrectAnswer: "3"},
			submit:   "3",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := AnswerKeyFor(&tt.question, 5.0)
			if err != nil {
				t.Fatalf("AnswerKeyFor: %v", err)
			}
			got, err := key.Matches(tt.submit)
			if err != nil {
				t.Fatalf("Matches: %v", err)
			}
			if got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.submit, got, tt.want)
			}
		})
	}
}

func TestAnswerKeyForBadStoredData(t *testing.T) {
	q := Question{ID: 7, QuestionType: QuestionMapIdentification, CorrectAnswer: "garbage"}
	if _, err := AnswerKeyFor(&q, 5.0); !apperrors.IsDataIntegrity(err) {
		t.Errorf("error = %v, want a data integrity error", err)
	}

	q = Question{ID: 8, QuestionType: "essay", CorrectAnswer: "x"}
	if _, err := AnswerKeyFor(&q, 5.0); !apperrors.IsDataIntegrity(err) {
		t.Errorf("error = %v, want a data integrity error", err)
	}
}
