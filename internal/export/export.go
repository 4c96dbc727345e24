// Package export serializes a finished (or in-flight) screening session into
// recruiter-facing JSON and CSV documents.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
	"github.com/fairyhunter13/ai-intake-agent/internal/usecase"
)

// Source identifies this service in exported metadata.
const Source = "TalentScout Hiring Assistant"

// Metadata tags every export.
type Metadata struct {
	Version string `json:"version"`
	Source  string `json:"source"`
}

// QAPair is one technical question with its recorded answer.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Export is the complete session snapshot handed to recruiters.
type Export struct {
	ExportID     string                  `json:"export_id"`
	ExportDate   string                  `json:"export_date"`
	Candidate    domain.CandidateProfile `json:"candidate"`
	Session      usecase.SessionSummary  `json:"session"`
	Conversation []domain.Message        `json:"conversation"`
	QAPairs      []QAPair                `json:"qa_pairs"`
	Metadata     Metadata                `json:"metadata"`
}

// Prepare assembles an export from the engine's current state. Questions that
// were asked but never answered carry the placeholder answer.
func Prepare(engine *usecase.Engine, now time.Time) Export {
	qa := engine.QuestionAnswers()
	pairs := make([]QAPair, 0, len(qa))
	for _, item := range qa {
		answer := item.Answer
		if !item.Answered {
			answer = domain.AnswerPlaceholder
		}
		pairs = append(pairs, QAPair{Question: item.Question, Answer: answer})
	}

	return Export{
		ExportID:     now.Format("20060102_150405"),
		ExportDate:   now.Format(time.RFC3339),
		Candidate:    engine.Profile(),
		Session:      engine.Summary(),
		Conversation: engine.History(),
		QAPairs:      pairs,
		Metadata:     Metadata{Version: "1.0", Source: Source},
	}
}

// ToJSON renders the export as indented JSON.
func (e Export) ToJSON() ([]byte, error) {
	out, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("op=export.ToJSON: %w", err)
	}
	return out, nil
}

// QAPairsCSV renders the question/answer ledger as CSV.
func (e Export) QAPairsCSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Question", "Answer"}); err != nil {
		return "", fmt.Errorf("op=export.QAPairsCSV: %w", err)
	}
	for _, qa := range e.QAPairs {
		if err := w.Write([]string{qa.Question, qa.Answer}); err != nil {
			return "", fmt.Errorf("op=export.QAPairsCSV: %w", err)
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// CandidateCSV renders the candidate profile as Field,Value rows.
func (e Export) CandidateCSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{
		{"Field", "Value"},
		{domain.FieldFullName, e.Candidate.FullName},
		{domain.FieldEmail, e.Candidate.Email},
		{domain.FieldPhone, e.Candidate.Phone},
		{domain.FieldExperienceYears, e.Candidate.ExperienceYears},
		{domain.FieldDesiredPositions, strings.Join(e.Candidate.DesiredPositions, ", ")},
		{domain.FieldLocation, e.Candidate.Location},
		{domain.FieldTechStack, e.Candidate.TechStack},
		{"interview_date", e.ExportDate},
		{"session_duration_minutes", fmt.Sprintf("%g", e.Session.DurationMinutes)},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("op=export.CandidateCSV: %w", err)
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}
