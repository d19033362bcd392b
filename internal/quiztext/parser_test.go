package quiztext

import (
	"testing"

	"fornsaga-backend/internal/apperrors"
)

func TestParseWellFormedBlock(t *testing.T) {
	raw := `Hver var fyrsti keisari Rómar?
a) Júlíus Caesar
b) Ágústus ✓
c) Neró
d) Trajanus`

	questions, issues := Parse(raw)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}

	q := questions[0]
	if q.Text != "Hver var fyrsti keisari Rómar?" {
		t.Errorf("question text = %q", q.Text)
	}
	if q.CorrectIndex != 1 {
		t.Errorf("correct index = %d, want 1", q.CorrectIndex)
	}
	// The check mark must not leak into the option text.
	if q.Options[1] != "Ágústus" {
		t.Errorf("option b = %q, want %q", q.Options[1], "Ágústus")
	}
	if q.Options[3] != "Trajanus" {
		t.Errorf("option d = %q, want %q", q.Options[3], "Trajanus")
	}
}

func TestParseMultipleQuestions(t *testing.T) {
	raw := `Fyrsta spurning?
a) eitt ✓
b) tvö
c) þrjú
d) fjögur

Önnur spurning?
a) rautt
b) blátt
c) grænt ✓
d) gult`

	questions, issues := Parse(raw)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].CorrectIndex != 0 || questions[1].CorrectIndex != 2 {
		t.Errorf("correct indices = %d, %d; want 0, 2", questions[0].CorrectIndex, questions[1].CorrectIndex)
	}
}

func TestParseBlankLinesAreInsignificant(t *testing.T) {
	// Blank lines inside a block must not split it.
	raw := `Spurning með bili?

a) já ✓

b) nei
c) kannski
d) aldrei`

	questions, issues := Parse(raw)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
}

func TestParseFailSoft(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		isKind func(error) bool
		wantOK int
	}{
		{
			name: "no correct option",
			raw: `Gölluð spurning?
a) eitt
b) tvö
c) þrjú
d) fjögur

Góð spurning?
a) rétt ✓
b) rangt
c) annað
d) hitt`,
			isKind: apperrors.IsDataIntegrity,
			wantOK: 1,
		},
		{
			name: "two correct options",
			raw: `Tvímerkt spurning?
a) eitt ✓
b) tvö ✓
c) þrjú
d) fjögur`,
			isKind: apperrors.IsDataIntegrity,
			wantOK: 0,
		},
		{
			name: "missing options",
			raw: `Hálfkláruð spurning?
a) eitt ✓
b) tvö`,
			isKind: apperrors.IsValidation,
			wantOK: 0,
		},
		{
			name: "option line without question",
			raw: `a) munaðarlaus valkostur ✓
b) annar`,
			isKind: apperrors.IsDataIntegrity,
			wantOK: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, issues := Parse(tt.raw)
			if len(questions) != tt.wantOK {
				t.Errorf("got %d questions, want %d", len(questions), tt.wantOK)
			}
			if len(issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			if !tt.isKind(issues[0].Err) {
				t.Errorf("issue error = %v, wrong kind", issues[0].Err)
			}
		})
	}
}

func TestParseTrailingBlockIsFlushed(t *testing.T) {
	// No trailing newline after the last option.
	raw := "Síðasta spurning?\na) eitt\nb) tvö\nc) þrjú ✓\nd) fjögur"
	questions, issues := Parse(raw)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if questions[0].CorrectIndex != 2 {
		t.Errorf("correct index = %d, want 2", questions[0].CorrectIndex)
	}
}
