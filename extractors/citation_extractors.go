package extractors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Field — извлечённое значение одного поля библиографической записи.
// Found=false означает, что поле в записи не встретилось; отсутствие
// поля и пустая строка принципиально различаются.
type Field struct {
	Value string `json:"value"`
	Found bool   `json:"found"`
}

// Fields — все поля, которые удалось извлечь из записи.
type Fields struct {
	Authors    []string `json:"authors,omitempty"`
	Title      Field    `json:"title"`
	Year       Field    `json:"year"`
	Pages      Field    `json:"pages"`
	Publisher  Field    `json:"publisher"`
	City       Field    `json:"city"`
	Journal    Field    `json:"journal"`
	Volume     Field    `json:"volume"`
	Issue      Field    `json:"issue"`
	URL        Field    `json:"url"`
	AccessDate Field    `json:"access_date"`
	DOI        Field    `json:"doi"`
}

const (
	maxAuthors       = 10
	maxDirectAuthors = 4
)

var (
	reAuthorInverted = regexp.MustCompile(`([А-ЯЁA-Z][а-яёa-z]+),\s*([А-ЯЁA-Z]\.\s*[А-ЯЁA-Z]?\.?)`)
	reAuthorDirect   = regexp.MustCompile(`([А-ЯЁA-Z]\.\s*[А-ЯЁA-Z]?\.?)\s+([А-ЯЁA-Z][а-яёa-z]+)`)
	reYearContext    = regexp.MustCompile(`[,–—]\s*(19[5-9]\d|20[0-2]\d)\s*[.–—]`)
	reYearAnywhere   = regexp.MustCompile(`\b(19[5-9]\d|20[0-2]\d)\b`)
	reTitleSlash     = regexp.MustCompile(`[А-ЯЁA-Z]\.\s+([^/]+)\s*/`)
	reLeadingInitial = regexp.MustCompile(`^[А-ЯЁA-Z]\.\s+(.+)$`)
	reTitleColon     = regexp.MustCompile(`^([^:]+):`)
	reTotalPages     = regexp.MustCompile(`[–—]\s*(\d+)\s*[сcp]\.`)
	rePageSpan       = regexp.MustCompile(`[СC]\.\s*(\d+[–—-]\d+)`)
	rePublisher      = regexp.MustCompile(`[–—]\s*[А-ЯЁA-Za-zа-яё]+\s*:\s*([^,]+?),`)
	reCity           = regexp.MustCompile(`[–—]\s*([А-ЯЁ][а-яё]+(?:\s*;\s*[А-ЯЁ][а-яё]+)?)\s*:`)
	reJournal        = regexp.MustCompile(`//\s*([^.–—]+)[.–—]`)
	reVolume         = regexp.MustCompile(`(?i)[тt]\.?\s*(\d+)`)
	reIssue          = regexp.MustCompile(`(?i)[№n][оo]?\.?\s*(\d+)`)
	reURL            = regexp.MustCompile(`(https?://[^\s<>"]+)`)
	reAccessDate     = regexp.MustCompile(`(?i)дата\s+(?:обращения|доступа)[:\s]*(\d{2}\.\d{2}\.\d{4})`)
	reDOI            = regexp.MustCompile(`(10\.\d{4,}/[^\s]+)`)
)

// ExtractAuthors извлекает авторов в инвертированной форме
// "Фамилия, И. О.". Если инвертированной формы в записи нет, берётся
// прямая форма "И. О. Фамилия" (не больше четырёх) и инвертируется.
func ExtractAuthors(text string) ([]string, error) {
	var authors []string

	for _, m := range reAuthorInverted.FindAllStringSubmatch(text, -1) {
		authors = append(authors, fmt.Sprintf("%s, %s", m[1], strings.TrimSpace(m[2])))
	}

	if len(authors) == 0 {
		matches := reAuthorDirect.FindAllStringSubmatch(text, -1)
		if len(matches) > maxDirectAuthors {
			matches = matches[:maxDirectAuthors]
		}
		for _, m := range matches {
			authors = append(authors, fmt.Sprintf("%s, %s", m[2], strings.TrimSpace(m[1])))
		}
	}

	if len(authors) == 0 {
		return nil, fmt.Errorf("authors not found")
	}
	if len(authors) > maxAuthors {
		authors = authors[:maxAuthors]
	}
	return authors, nil
}

// ExtractYear извлекает год издания. Сначала ищется год в контексте
// выходных данных (между запятой или тире и точкой), затем любой
// четырёхзначный год в диапазоне 1950-2029.
func ExtractYear(text string) (int, error) {
	if m := reYearContext.FindStringSubmatch(text); m != nil {
		return strconv.Atoi(m[1])
	}
	if m := reYearAnywhere.FindStringSubmatch(text); m != nil {
		return strconv.Atoi(m[1])
	}
	return 0, fmt.Errorf("year not found")
}

// ExtractTitle извлекает название. Основной паттерн: текст после
// блока инициалов автора и до косой черты сведений об ответственности.
// Для записей без автора берётся текст до первого двоеточия.
func ExtractTitle(text string) (string, error) {
	if m := reTitleSlash.FindStringSubmatch(text); m != nil {
		title := strings.TrimSpace(m[1])
		// Первый инициал съедается якорем паттерна, остальные могли
		// попасть в захват: срезаем их, пока они в начале.
		for {
			rest := reLeadingInitial.FindStringSubmatch(title)
			if rest == nil {
				break
			}
			title = strings.TrimSpace(rest[1])
		}
		return title, nil
	}
	if m := reTitleColon.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), nil
	}
	return "", fmt.Errorf("title not found")
}

// ExtractPages извлекает объём: либо общее число страниц ("415 с."),
// либо диапазон страниц статьи ("С. 45–52").
func ExtractPages(text string) (string, error) {
	if m := reTotalPages.FindStringSubmatch(text); m != nil {
		return m[1], nil
	}
	if m := rePageSpan.FindStringSubmatch(text); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("pages not found")
}

// ExtractPublisher извлекает издательство из области выходных данных
// "– Город : Издательство,".
func ExtractPublisher(text string) (string, error) {
	if m := rePublisher.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), nil
	}
	return "", fmt.Errorf("publisher not found")
}

// ExtractCity извлекает город издания, включая парные города вида
// "Москва ; Минск".
func ExtractCity(text string) (string, error) {
	if m := reCity.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), nil
	}
	return "", fmt.Errorf("city not found")
}

// ExtractJournal извлекает название журнала или газеты после "//".
func ExtractJournal(text string) (string, error) {
	if m := reJournal.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), nil
	}
	return "", fmt.Errorf("journal not found")
}

// ExtractVolume извлекает номер тома ("Т. 5").
func ExtractVolume(text string) (string, error) {
	if m := reVolume.FindStringSubmatch(text); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("volume not found")
}

// ExtractIssue извлекает номер выпуска ("№ 5", "No. 5").
func ExtractIssue(text string) (string, error) {
	if m := reIssue.FindStringSubmatch(text); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("issue not found")
}

// ExtractURL извлекает адрес электронного ресурса.
func ExtractURL(text string) (string, error) {
	if m := reURL.FindStringSubmatch(text); m != nil {
		return strings.TrimRight(m[1], "."), nil
	}
	return "", fmt.Errorf("URL not found")
}

// ExtractAccessDate извлекает дату обращения к электронному ресурсу.
// Поддерживаются обе формы: "дата обращения:" и "Дата доступа:".
func ExtractAccessDate(text string) (string, error) {
	if m := reAccessDate.FindStringSubmatch(text); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("access date not found")
}

// ExtractDOI извлекает DOI.
func ExtractDOI(text string) (string, error) {
	if m := reDOI.FindStringSubmatch(text); m != nil {
		return strings.TrimRight(m[1], "."), nil
	}
	return "", fmt.Errorf("DOI not found")
}

// Extract запускает все извлекатели и собирает найденные поля.
// Ненайденные поля остаются с Found=false.
func Extract(text string) Fields {
	var f Fields

	if authors, err := ExtractAuthors(text); err == nil {
		f.Authors = authors
	}
	f.Title = toField(ExtractTitle(text))
	if year, err := ExtractYear(text); err == nil {
		f.Year = Field{Value: strconv.Itoa(year), Found: true}
	}
	f.Pages = toField(ExtractPages(text))
	f.Publisher = toField(ExtractPublisher(text))
	f.City = toField(ExtractCity(text))
	f.Journal = toField(ExtractJournal(text))
	f.Volume = toField(ExtractVolume(text))
	f.Issue = toField(ExtractIssue(text))
	f.URL = toField(ExtractURL(text))
	f.AccessDate = toField(ExtractAccessDate(text))
	f.DOI = toField(ExtractDOI(text))

	return f
}

func toField(value string, err error) Field {
	if err != nil {
		return Field{}
	}
	return Field{Value: value, Found: true}
}
