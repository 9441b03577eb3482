package extractors

import (
	"reflect"
	"testing"
)

const (
	bookExample       = "Дробышевский, Н. П. Ревизия и аудит : учеб.-метод. пособие / Н. П. Дробышевский. – Минск : Амалфея, 2013. – 415 с."
	journalExample    = "Лукашов, А. И. Актуальные вопросы уголовного права / А. И. Лукашов // Полымя. – 2019. – № 5. – С. 88–91."
	electronicExample = "Национальный правовой Интернет-портал Республики Беларусь [Электронный ресурс]. – Режим доступа: http://www.pravo.by. – Дата доступа: 24.06.2024."
)

func TestExtractAuthors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "инвертированная форма",
			input: bookExample,
			want:  []string{"Дробышевский, Н. П."},
		},
		{
			name:  "несколько авторов",
			input: "Иванов, И. И., Петров, П. П. Название работы. – Минск, 2015.",
			want:  []string{"Иванов, И. И.", "Петров, П. П."},
		},
		{
			name:  "прямая форма инвертируется",
			input: "Учебник физики / А. Б. Ковалев. – Минск, 2015.",
			want:  []string{"Ковалев, А. Б."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractAuthors(tt.input)
			if err != nil {
				t.Fatalf("ExtractAuthors() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractAuthors() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := ExtractAuthors("О нормативных правовых актах : закон"); err == nil {
		t.Error("ожидалась ошибка для записи без авторов")
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"год в выходных данных", bookExample, 2013},
		{"год после тире", "Полымя. – 2019. – № 5.", 2019},
		{"год без контекста", "Сборник статей 1998 года", 1998},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractYear(tt.input)
			if err != nil {
				t.Fatalf("ExtractYear() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractYear() = %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := ExtractYear("Запись без года издания"); err == nil {
		t.Error("ожидалась ошибка для записи без года")
	}
	// 1949 вне диапазона допустимых лет издания.
	if _, err := ExtractYear("Архив за 1949 год"); err == nil {
		t.Error("год вне диапазона не должен извлекаться")
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "название до косой черты",
			input: bookExample,
			want:  "Ревизия и аудит : учеб.-метод. пособие",
		},
		{
			name:  "название до двоеточия без автора",
			input: "О нормативных правовых актах : Закон Респ. Беларусь от 17 июля 2018 г.",
			want:  "О нормативных правовых актах",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTitle(tt.input)
			if err != nil {
				t.Fatalf("ExtractTitle() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractPages(t *testing.T) {
	got, err := ExtractPages(bookExample)
	if err != nil || got != "415" {
		t.Errorf("ExtractPages() = %q, %v, want 415", got, err)
	}

	got, err = ExtractPages(journalExample)
	if err != nil || got != "88–91" {
		t.Errorf("ExtractPages() = %q, %v, want 88–91", got, err)
	}
}

func TestExtractPublisherAndCity(t *testing.T) {
	publisher, err := ExtractPublisher(bookExample)
	if err != nil || publisher != "Амалфея" {
		t.Errorf("ExtractPublisher() = %q, %v, want Амалфея", publisher, err)
	}

	city, err := ExtractCity(bookExample)
	if err != nil || city != "Минск" {
		t.Errorf("ExtractCity() = %q, %v, want Минск", city, err)
	}

	// Парный город издания.
	city, err = ExtractCity("Справочник. – Москва ; Минск : Наука, 2001.")
	if err != nil || city != "Москва ; Минск" {
		t.Errorf("ExtractCity() = %q, %v, want Москва ; Минск", city, err)
	}
}

func TestExtractJournalVolumeIssue(t *testing.T) {
	journal, err := ExtractJournal(journalExample)
	if err != nil || journal != "Полымя" {
		t.Errorf("ExtractJournal() = %q, %v, want Полымя", journal, err)
	}

	volume, err := ExtractVolume("Доклады НАН Беларуси. – 2020. – Т. 64, № 3.")
	if err != nil || volume != "64" {
		t.Errorf("ExtractVolume() = %q, %v, want 64", volume, err)
	}

	issue, err := ExtractIssue(journalExample)
	if err != nil || issue != "5" {
		t.Errorf("ExtractIssue() = %q, %v, want 5", issue, err)
	}
}

func TestExtractURLAndAccessDate(t *testing.T) {
	url, err := ExtractURL(electronicExample)
	if err != nil || url != "http://www.pravo.by" {
		t.Errorf("ExtractURL() = %q, %v, want http://www.pravo.by", url, err)
	}

	date, err := ExtractAccessDate(electronicExample)
	if err != nil || date != "24.06.2024" {
		t.Errorf("ExtractAccessDate() = %q, %v, want 24.06.2024", date, err)
	}

	// Альтернативная форма даты обращения.
	date, err = ExtractAccessDate("Сайт [Электронный ресурс]. – URL: https://example.by (дата обращения: 01.02.2023).")
	if err != nil || date != "01.02.2023" {
		t.Errorf("ExtractAccessDate() = %q, %v, want 01.02.2023", date, err)
	}
}

func TestExtractDOI(t *testing.T) {
	doi, err := ExtractDOI("Статья // Журнал. – 2021. DOI: 10.1234/abcd.5678.")
	if err != nil || doi != "10.1234/abcd.5678" {
		t.Errorf("ExtractDOI() = %q, %v", doi, err)
	}

	if _, err := ExtractDOI(bookExample); err == nil {
		t.Error("ожидалась ошибка для записи без DOI")
	}
}

func TestExtract(t *testing.T) {
	f := Extract(bookExample)

	if len(f.Authors) != 1 || f.Authors[0] != "Дробышевский, Н. П." {
		t.Errorf("Authors = %v", f.Authors)
	}
	if !f.Year.Found || f.Year.Value != "2013" {
		t.Errorf("Year = %+v", f.Year)
	}
	if !f.City.Found || f.City.Value != "Минск" {
		t.Errorf("City = %+v", f.City)
	}
	if !f.Publisher.Found || f.Publisher.Value != "Амалфея" {
		t.Errorf("Publisher = %+v", f.Publisher)
	}
	if !f.Pages.Found || f.Pages.Value != "415" {
		t.Errorf("Pages = %+v", f.Pages)
	}
	// Отсутствующие поля остаются ненайденными, а не пустыми значениями.
	if f.URL.Found || f.DOI.Found || f.Journal.Found {
		t.Errorf("лишние поля: URL=%+v DOI=%+v Journal=%+v", f.URL, f.DOI, f.Journal)
	}
}
