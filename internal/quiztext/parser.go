// Package quiztext converts hand-authored plain-text question blocks into
// structured records. The format is one question line followed by four
// option lines ("a) ..." through "d) ..."), the correct option carrying a
// trailing check mark. The parser is pure; callers persist the results.
package quiztext

import (
	"regexp"
	"strings"

	"fornsaga-backend/internal/apperrors"
)

// CheckMark is the glyph marking the correct option in authored text.
const CheckMark = "✓"

const optionCount = 4

// optionLine captures "a) text" with an optional trailing check mark.
var optionLine = regexp.MustCompile(`^([a-d])\) (.+?)( ` + CheckMark + `)?$`)

// ParsedQuestion is one well-formed record from a text block.
type ParsedQuestion struct {
	Text         string
	Options      [optionCount]string
	CorrectIndex int // 0-based: a=0 .. d=3
}

// Issue describes one skipped question. Parsing is fail-soft per question:
// a bad block never prevents the surrounding questions from being parsed.
type Issue struct {
	QuestionText string
	Err          error
}

// Parse scans raw authored text in one pass and returns the questions in
// input order plus one Issue per skipped block.
func Parse(raw string) ([]ParsedQuestion, []Issue) {
	var (
		questions []ParsedQuestion
		issues    []Issue
		current   *pending
	)

	flush := func() {
		if current == nil {
			return
		}
		q, err := current.finish()
		if err != nil {
			issues = append(issues, Issue{QuestionText: current.text, Err: err})
		} else {
			questions = append(questions, q)
		}
		current = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := optionLine.FindStringSubmatch(line)
		if m == nil {
			// A non-option line starts a new question.
			flush()
			current = &pending{text: line}
			continue
		}
		if current == nil {
			// Option line with no preceding question line.
			issues = append(issues, Issue{
				QuestionText: line,
				Err:          apperrors.DataIntegrityf("option line without a question"),
			})
			continue
		}
		index := int(m[1][0] - 'a')
		current.setOption(index, m[2], m[3] != "")
	}
	flush()

	return questions, issues
}

// pending accumulates one question while its option lines are being read.
type pending struct {
	text    string
	options [optionCount]string
	seen    [optionCount]bool
	correct []int
}

func (p *pending) setOption(index int, text string, isCorrect bool) {
	if index < 0 || index >= optionCount {
		return
	}
	p.options[index] = strings.TrimRight(text, " \t")
	p.seen[index] = true
	if isCorrect {
		p.correct = append(p.correct, index)
	}
}

func (p *pending) finish() (ParsedQuestion, error) {
	for i := 0; i < optionCount; i++ {
		if !p.seen[i] {
			return ParsedQuestion{}, apperrors.Validationf("question %q has fewer than %d options", p.text, optionCount)
		}
	}
	switch len(p.correct) {
	case 0:
		return ParsedQuestion{}, apperrors.DataIntegrityf("question %q has no correct option marked", p.text)
	case 1:
	default:
		return ParsedQuestion{}, apperrors.DataIntegrityf("question %q has %d correct options marked", p.text, len(p.correct))
	}
	return ParsedQuestion{
		Text:         p.text,
		Options:      p.options,
		CorrectIndex: p.correct[0],
	}, nil
}
