package dataset

import (
	"strings"
	"testing"

	"gostformatter/classification"
	"gostformatter/normalization"
)

func TestVariateKeepsStructure(t *testing.T) {
	e := NewExpander(42)
	original := "Дробышевский, Н. П. Ревизия и аудит : учеб.-метод. пособие / Н. П. Дробышевский. – Минск : Амалфея, 2013. – 415 с."

	variant := e.Variate(original)

	if classification.Classify(variant) != classification.BookFewAuthors {
		t.Errorf("вариация сменила тип: %q", variant)
	}
	if !strings.Contains(variant, "Ревизия и аудит : учеб.-метод. пособие") {
		t.Errorf("название потеряно: %q", variant)
	}
	if got := normalization.Normalize(variant); got != variant {
		t.Errorf("вариация не нормализована:\n%q\n%q", variant, got)
	}
}

func TestVariateReplacesSurnameConsistently(t *testing.T) {
	e := NewExpander(42)
	variant := e.Variate("Иванов, И. П. Основы экономики / И. П. Иванов. – Минск : БГУ, 2015. – 200 с.")

	// Фамилия в обращенной и прямой формах должна остаться одной и той же.
	comma := strings.Index(variant, ",")
	if comma <= 0 {
		t.Fatalf("не нашли обращенную форму: %q", variant)
	}
	surname := variant[:comma]
	if strings.Count(variant, surname) != 2 {
		t.Errorf("фамилия %q встречается не дважды: %q", surname, variant)
	}
}

func TestVariateDeterministic(t *testing.T) {
	original := "Иванов, И. П. Статья / И. П. Иванов // Полымя. – 2020. – № 2. – С. 5–9."
	first := NewExpander(7).Variate(original)
	second := NewExpander(7).Variate(original)
	if first != second {
		t.Errorf("вариации с одним зерном различаются:\n%q\n%q", first, second)
	}
}

func TestExpandReachesTarget(t *testing.T) {
	base := NewGenerator(42).Generate(map[classification.Category]int{
		classification.BookFewAuthors: 3,
		classification.JournalArticle: 2,
	})

	expanded := NewExpander(42).Expand(base, 20, 8)

	if expanded.TotalExamples != 20 || len(expanded.Examples) != 20 {
		t.Fatalf("TotalExamples = %d, len = %d", expanded.TotalExamples, len(expanded.Examples))
	}
	// Оригиналы входят в результат без изменений.
	for i, orig := range base.Examples {
		if expanded.Examples[i] != orig {
			t.Errorf("оригинал %d изменён: %+v", i, expanded.Examples[i])
		}
	}

	var distributed int
	for _, n := range expanded.TypeDistribution {
		distributed += n
	}
	if distributed != 20 {
		t.Errorf("сумма распределения = %d", distributed)
	}
}

func TestExpandSkipsUnknownType(t *testing.T) {
	base := Corpus{Examples: []Record{
		{Type: classification.Unknown, Example: "непонятная запись без типа и признаков"},
	}}

	expanded := NewExpander(1).Expand(base, 10, 8)

	// Вариации брать не из чего: остаются только оригиналы.
	if len(expanded.Examples) != 1 {
		t.Errorf("len = %d, want 1", len(expanded.Examples))
	}
}

func TestExpandBeyondPerRecordLimit(t *testing.T) {
	base := NewGenerator(3).Generate(map[classification.Category]int{
		classification.BookFewAuthors: 1,
	})

	// Цель больше, чем лимит вариаций с одной записи: счетчики
	// сбрасываются, и корпус все равно дорастает до цели.
	expanded := NewExpander(3).Expand(base, 25, 8)

	if len(expanded.Examples) != 25 {
		t.Errorf("len = %d, want 25", len(expanded.Examples))
	}
}

func TestCleanup(t *testing.T) {
	c := Corpus{Examples: []Record{
		{Type: classification.BookFewAuthors, Example: "Иванов, И. П.  Основы экономики / И. П. Иванов. –Минск : БГУ, 2015. – 200 с."},
		{Type: classification.JournalArticle, Example: "Иванов, И. П. Статья / И. П. Иванов // Полымя. – 2020. – № 2. – С. 5–9."},
	}}

	fixed, changed := Cleanup(c)

	if changed != 1 {
		t.Errorf("changed = %d, want 1", changed)
	}
	want := "Иванов, И. П. Основы экономики / И. П. Иванов. – Минск : БГУ, 2015. – 200 с."
	if fixed.Examples[0].Example != want {
		t.Errorf("Examples[0] =\n%q, want\n%q", fixed.Examples[0].Example, want)
	}
	if fixed.Examples[1] != c.Examples[1] {
		t.Errorf("чистая запись изменена: %+v", fixed.Examples[1])
	}
}
