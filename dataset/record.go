package dataset

import (
	"fmt"

	"gostformatter/classification"
	"gostformatter/normalization"
)

// Record — одна запись корпуса: тип и каноническая строка примера.
type Record struct {
	Type    classification.Category `json:"type"`
	Example string                  `json:"example"`
}

// Corpus — именованный корпус примеров с раскладкой по типам.
type Corpus struct {
	Description      string                          `json:"description"`
	Source           string                          `json:"source"`
	GeneratedAt      string                          `json:"generated_at"`
	TotalExamples    int                             `json:"total_examples"`
	TypeDistribution map[classification.Category]int `json:"type_distribution"`
	Examples         []Record                        `json:"examples"`
}

// минимальная длина осмысленной библиографической записи
const minExampleLength = 30

// RecordProblem — проблемы одной записи корпуса.
type RecordProblem struct {
	Index       int                     `json:"index"`
	Type        classification.Category `json:"type"`
	Structural  []string                `json:"structural,omitempty"`
	Punctuation []normalization.Issue   `json:"punctuation,omitempty"`
}

// ValidationReport — итог проверки корпуса.
type ValidationReport struct {
	Total      int             `json:"total"`
	Clean      int             `json:"clean"`
	Problems   []RecordProblem `json:"problems,omitempty"`
	Structural []string        `json:"structural,omitempty"`
}

// OK сообщает, что корпус прошёл проверку без замечаний.
func (r ValidationReport) OK() bool {
	return len(r.Problems) == 0 && len(r.Structural) == 0
}

// Validate проверяет структуру корпуса и пунктуацию каждой записи.
// Проверка ничего не исправляет, только отчитывается.
func Validate(c Corpus) ValidationReport {
	report := ValidationReport{Total: len(c.Examples)}

	if c.TotalExamples != len(c.Examples) {
		report.Structural = append(report.Structural,
			fmt.Sprintf("total_examples=%d не совпадает с числом записей %d", c.TotalExamples, len(c.Examples)))
	}

	var distributed int
	for _, n := range c.TypeDistribution {
		distributed += n
	}
	if len(c.TypeDistribution) > 0 && distributed != len(c.Examples) {
		report.Structural = append(report.Structural,
			fmt.Sprintf("сумма type_distribution=%d не совпадает с числом записей %d", distributed, len(c.Examples)))
	}

	for i, rec := range c.Examples {
		problem := RecordProblem{Index: i, Type: rec.Type}

		if !rec.Type.IsValid() {
			problem.Structural = append(problem.Structural, fmt.Sprintf("неизвестный тип %q", rec.Type))
		}
		if len([]rune(rec.Example)) < minExampleLength {
			problem.Structural = append(problem.Structural, "запись короче минимальной длины")
		}
		problem.Punctuation = normalization.CheckPunctuation(rec.Example)

		if len(problem.Structural) > 0 || len(problem.Punctuation) > 0 {
			report.Problems = append(report.Problems, problem)
		} else {
			report.Clean++
		}
	}

	return report
}
