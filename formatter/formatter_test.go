package formatter

import (
	"strings"
	"testing"

	"gostformatter/classification"
	"gostformatter/extractors"
)

func found(value string) extractors.Field {
	return extractors.Field{Value: value, Found: true}
}

func TestRenderBook(t *testing.T) {
	fields := extractors.Fields{
		Authors:   []string{"Дробышевский, Н. П."},
		Title:     found("Ревизия и аудит : учеб.-метод. пособие"),
		City:      found("Минск"),
		Publisher: found("Амалфея"),
		Year:      found("2013"),
		Pages:     found("415"),
	}

	got, issues := Render(classification.BookFewAuthors, fields)
	want := "Дробышевский, Н. П. Ревизия и аудит : учеб.-метод. пособие / Н. П. Дробышевский. – Минск : Амалфея, 2013. – 415 с."
	if got != want {
		t.Errorf("Render() =\n%q, want\n%q", got, want)
	}
	if len(issues) != 0 {
		t.Errorf("неожиданные замечания: %v", issues)
	}
}

func TestRenderJournalArticle(t *testing.T) {
	fields := extractors.Fields{
		Authors: []string{"Валатоўская, Н. А."},
		Title:   found("Традыцыйны вясельны абрад"),
		Journal: found("Нар. асвета"),
		Year:    found("2013"),
		Issue:   found("5"),
		Pages:   found("88–91"),
	}

	got, issues := Render(classification.JournalArticle, fields)
	want := "Валатоўская, Н. А. Традыцыйны вясельны абрад / Н. А. Валатоўская // Нар. асвета. – 2013. – № 5. – С. 88–91."
	if got != want {
		t.Errorf("Render() =\n%q, want\n%q", got, want)
	}
	if len(issues) != 0 {
		t.Errorf("неожиданные замечания: %v", issues)
	}
}

func TestRenderJournalArticleWithVolume(t *testing.T) {
	fields := extractors.Fields{
		Authors: []string{"Иванов, И. И."},
		Title:   found("Название статьи"),
		Journal: found("Доклады НАН Беларуси"),
		Year:    found("2020"),
		Volume:  found("64"),
		Issue:   found("3"),
		Pages:   found("45–52"),
	}

	got, _ := Render(classification.JournalArticle, fields)
	if !strings.Contains(got, ". – Т. 64, № 3. – С. 45–52.") {
		t.Errorf("том и номер собраны неверно: %q", got)
	}
}

func TestRenderCollapsesMissingOptional(t *testing.T) {
	fields := extractors.Fields{
		Authors: []string{"Иванов, И. И."},
		Title:   found("Название работы"),
		Year:    found("2015"),
	}

	got, issues := Render(classification.BookFewAuthors, fields)
	want := "Иванов, И. И. Название работы / И. И. Иванов, 2015."
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if len(issues) != 0 {
		t.Errorf("неожиданные замечания: %v", issues)
	}
	if strings.Contains(got, " : ") || strings.Contains(got, GapMarker) {
		t.Errorf("висячие разделители или маркеры в %q", got)
	}
}

func TestRenderMissingRequiredField(t *testing.T) {
	fields := extractors.Fields{
		Authors: []string{"Иванов, И. И."},
		Year:    found("2015"),
	}

	got, issues := Render(classification.BookFewAuthors, fields)
	if !strings.Contains(got, GapMarker) {
		t.Errorf("нет маркера пропуска: %q", got)
	}
	if len(issues) != 1 || issues[0].Code != IssueMissingRequiredField || issues[0].Field != "title" {
		t.Errorf("ожидалось замечание про title, получено %v", issues)
	}
}

func TestRenderElectronicResource(t *testing.T) {
	fields := extractors.Fields{
		Title:      found("Национальный правовой Интернет-портал Республики Беларусь"),
		URL:        found("http://www.pravo.by"),
		AccessDate: found("24.06.2024"),
	}

	got, issues := Render(classification.ElectronicResource, fields)
	want := "Национальный правовой Интернет-портал Республики Беларусь [Электронный ресурс]. – Режим доступа: http://www.pravo.by. – Дата доступа: 24.06.2024."
	if got != want {
		t.Errorf("Render() =\n%q, want\n%q", got, want)
	}
	if len(issues) != 0 {
		t.Errorf("неожиданные замечания: %v", issues)
	}
}

func TestRenderDissertationExtent(t *testing.T) {
	fields := extractors.Fields{
		Authors: []string{"Врублеўскі, Ю. У."},
		Title:   found("Гістарыяграфія гісторыі : дыс. ... канд. гіст. навук : 07.00.09"),
		City:    found("Мінск"),
		Year:    found("2013"),
		Pages:   found("148"),
	}

	got, _ := Render(classification.Dissertation, fields)
	if !strings.HasSuffix(got, ". – 148 л.") {
		t.Errorf("объём диссертации должен быть в листах: %q", got)
	}
	if !strings.Contains(got, "дыс. ... канд. гіст. навук") {
		t.Errorf("многоточие должно сохраниться: %q", got)
	}
}

func TestRenderManyAuthors(t *testing.T) {
	fields := extractors.Fields{
		Title:     found("Закономерности формирования системы движений"),
		Authors:   []string{"Боровая, В. А."},
		City:      found("Гомель"),
		Publisher: found("ГГУ"),
		Year:      found("2013"),
		Pages:     found("173"),
	}

	got, _ := Render(classification.BookManyAuthors, fields)
	want := "Закономерности формирования системы движений / В. А. Боровая [и др.]. – Гомель : ГГУ, 2013. – 173 с."
	if got != want {
		t.Errorf("Render() =\n%q, want\n%q", got, want)
	}
}

func TestRenderUnknownUsesGenericTemplate(t *testing.T) {
	fields := extractors.Fields{
		Title: found("Произвольное издание"),
		Year:  found("2001"),
	}

	got, issues := Render(classification.Unknown, fields)
	if got != "Произвольное издание, 2001." {
		t.Errorf("Render() = %q", got)
	}
	if len(issues) != 0 {
		t.Errorf("неожиданные замечания: %v", issues)
	}
}

// Каждое найденное поле должно попасть в собранную запись: рендерер
// не теряет данные молча.
func TestRenderPreservesFoundFields(t *testing.T) {
	fields := extractors.Fields{
		Authors:   []string{"Дробышевский, Н. П."},
		Title:     found("Ревизия и аудит : учеб.-метод. пособие"),
		City:      found("Минск"),
		Publisher: found("Амалфея"),
		Year:      found("2013"),
		Pages:     found("415"),
	}

	got, _ := Render(classification.BookFewAuthors, fields)
	for _, want := range []string{"Дробышевский", "Ревизия и аудит", "Минск", "Амалфея", "2013", "415"} {
		if !strings.Contains(got, want) {
			t.Errorf("в записи %q нет %q", got, want)
		}
	}
}
