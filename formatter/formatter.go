package formatter

import (
	"strings"

	"gostformatter/classification"
	"gostformatter/extractors"
)

// GapMarker подставляется на место обязательного поля, которого нет
// в извлечённых данных. Рендерер никогда не придумывает значения.
const GapMarker = "[?]"

// Issue — замечание рендерера к собранной записи.
type Issue struct {
	Code    IssueCode `json:"code"`
	Field   string    `json:"field"`
	Message string    `json:"message"`
}

// IssueCode — код замечания рендерера.
type IssueCode string

// IssueMissingRequiredField — обязательное поле шаблона не найдено.
const IssueMissingRequiredField IssueCode = "missing_required_field"

// slot — идентификатор подстановки в шаблоне.
type slot int

const (
	slotNone slot = iota
	slotAuthorInverted
	slotTitle
	slotDirectAuthors
	slotCity
	slotPublisher
	slotYear
	slotPages
	slotJournal
	slotVolumeIssue
	slotVolumeOnly
	slotURL
	slotAccessDate
)

var slotNames = map[slot]string{
	slotAuthorInverted: "author",
	slotTitle:          "title",
	slotDirectAuthors:  "authors",
	slotCity:           "city",
	slotPublisher:      "publisher",
	slotYear:           "year",
	slotPages:          "pages",
	slotJournal:        "journal",
	slotVolumeIssue:    "volume_issue",
	slotVolumeOnly:     "volume",
	slotURL:            "url",
	slotAccessDate:     "access_date",
}

// part — один элемент шаблона: литеральный префикс-разделитель и
// подстановка. Отсутствие необязательного поля схлопывает элемент
// целиком, вместе с разделителем.
type part struct {
	prefix   string
	slot     slot
	suffix   string
	required bool
}

func lit(text string) part {
	return part{prefix: text}
}

func opt(prefix string, s slot, suffix string) part {
	return part{prefix: prefix, slot: s, suffix: suffix}
}

func req(prefix string, s slot, suffix string) part {
	return part{prefix: prefix, slot: s, suffix: suffix, required: true}
}

// Template — упорядоченный набор элементов записи одной категории.
type Template []part

// Шаблоны собраны по канонічным формулам оформления ВАК/ГОСТ 7.1.
var templates = map[classification.Category]Template{
	classification.BookFewAuthors: {
		req("", slotAuthorInverted, ""),
		req(" ", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotCity, ""),
		opt(" : ", slotPublisher, ""),
		opt(", ", slotYear, ""),
		opt(". – ", slotPages, " с"),
	},
	classification.BookManyAuthors: {
		req("", slotTitle, ""),
		opt(" / ", slotDirectAuthors, " [и др.]"),
		opt(". – ", slotCity, ""),
		opt(" : ", slotPublisher, ""),
		opt(", ", slotYear, ""),
		opt(". – ", slotPages, " с"),
	},
	classification.JournalArticle: {
		req("", slotAuthorInverted, ""),
		req(" ", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		req(" // ", slotJournal, ""),
		opt(". – ", slotYear, ""),
		opt(". – ", slotVolumeIssue, ""),
		opt(". – С. ", slotPages, ""),
	},
	classification.CollectionArticle: {
		req("", slotAuthorInverted, ""),
		req(" ", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(" // ", slotJournal, ""),
		opt(". – ", slotCity, ""),
		opt(", ", slotYear, ""),
		opt(". – С. ", slotPages, ""),
	},
	classification.Dissertation: {
		req("", slotAuthorInverted, ""),
		req(" ", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotCity, ""),
		opt(", ", slotYear, ""),
		opt(". – ", slotPages, " л"),
	},
	classification.Abstract: {
		req("", slotAuthorInverted, ""),
		req(" ", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotCity, ""),
		opt(", ", slotYear, ""),
		opt(". – ", slotPages, " с"),
	},
	classification.Law: {
		req("", slotTitle, ""),
		opt(" // ", slotJournal, ""),
		opt(". – ", slotYear, ""),
		opt(". – ", slotVolumeIssue, ""),
	},
	classification.Standard: {
		req("", slotTitle, ""),
		opt(". – ", slotCity, ""),
		opt(" : ", slotPublisher, ""),
		opt(", ", slotYear, ""),
		opt(". – ", slotPages, " с"),
	},
	classification.Patent: {
		req("", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotYear, ""),
	},
	classification.Conference: {
		req("", slotTitle, ""),
		opt(". – ", slotCity, ""),
		opt(" : ", slotPublisher, ""),
		opt(", ", slotYear, ""),
		opt(". – ", slotPages, " с"),
	},
	classification.ElectronicResource: {
		req("", slotTitle, ""),
		lit(" [Электронный ресурс]"),
		req(". – Режим доступа: ", slotURL, ""),
		opt(". – Дата доступа: ", slotAccessDate, ""),
	},
	classification.NewspaperArticle: {
		req("", slotAuthorInverted, ""),
		req(" ", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		req(" // ", slotJournal, ""),
		opt(". – ", slotYear, ""),
		opt(". – С. ", slotPages, ""),
	},
	classification.Preprint: {
		req("", slotAuthorInverted, ""),
		req(" ", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotCity, ""),
		opt(" : ", slotPublisher, ""),
		opt(", ", slotYear, ""),
		opt(". – ", slotPages, " с"),
	},
	classification.Multimedia: {
		req("", slotAuthorInverted, ""),
		req(" ", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotCity, ""),
		opt(" : ", slotPublisher, ""),
		opt(", ", slotYear, ""),
	},
	classification.Map: {
		req("", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotCity, ""),
		opt(" : ", slotPublisher, ""),
		opt(", ", slotYear, ""),
	},
	classification.MusicScore: {
		req("", slotAuthorInverted, ""),
		req(" ", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotCity, ""),
		opt(" : ", slotPublisher, ""),
		opt(", ", slotYear, ""),
	},
	classification.VisualMaterial: {
		req("", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotCity, ""),
		opt(" : ", slotPublisher, ""),
		opt(", ", slotYear, ""),
	},
	classification.Archive: {
		req("", slotTitle, ""),
		opt(" // ", slotJournal, ""),
	},
	classification.ResearchReport: {
		req("", slotTitle, ""),
		opt(". – ", slotCity, ""),
		opt(", ", slotYear, ""),
		opt(". – ", slotPages, " с"),
	},
	classification.Deposited: {
		req("", slotAuthorInverted, ""),
		req(" ", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotCity, ""),
		opt(", ", slotYear, ""),
		opt(". – ", slotPages, " с"),
	},
	classification.Multivolume: {
		req("", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotCity, ""),
		opt(" : ", slotPublisher, ""),
		opt(", ", slotYear, ""),
		opt(". – Т. ", slotVolumeOnly, ""),
		opt(". – ", slotPages, " с"),
	},
	classification.Review: {
		req("", slotAuthorInverted, ""),
		req(" ", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		req(" // ", slotJournal, ""),
		opt(". – ", slotYear, ""),
		opt(". – ", slotVolumeIssue, ""),
		opt(". – С. ", slotPages, ""),
	},
	classification.Catalog: {
		req("", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotCity, ""),
		opt(" : ", slotPublisher, ""),
		opt(", ", slotYear, ""),
		opt(". – ", slotPages, " с"),
	},
	classification.MethodicalGuide: {
		req("", slotTitle, ""),
		opt(" / ", slotDirectAuthors, ""),
		opt(". – ", slotCity, ""),
		opt(" : ", slotPublisher, ""),
		opt(", ", slotYear, ""),
		opt(". – ", slotPages, " с"),
	},
}

// genericTemplate применяется для категории Unknown и любых категорий
// без собственного шаблона.
var genericTemplate = Template{
	req("", slotTitle, ""),
	opt(" / ", slotDirectAuthors, ""),
	opt(". – ", slotCity, ""),
	opt(" : ", slotPublisher, ""),
	opt(", ", slotYear, ""),
	opt(". – ", slotPages, " с"),
}

// Render собирает библиографическую запись категории tag из
// извлечённых полей. Отсутствие обязательного поля не ошибка:
// на его месте остаётся маркер пропуска, а вызывающий получает
// замечание MissingRequiredField.
func Render(tag classification.Category, fields extractors.Fields) (string, []Issue) {
	tpl, ok := templates[tag]
	if !ok {
		tpl = genericTemplate
	}

	var b strings.Builder
	var issues []Issue

	for _, p := range tpl {
		if p.slot == slotNone {
			b.WriteString(p.prefix)
			continue
		}
		value, found := slotValue(p.slot, fields)
		if !found {
			if !p.required {
				continue
			}
			issues = append(issues, Issue{
				Code:    IssueMissingRequiredField,
				Field:   slotNames[p.slot],
				Message: "обязательное поле не найдено в записи",
			})
			value = GapMarker
		}
		b.WriteString(p.prefix)
		b.WriteString(value)
		b.WriteString(p.suffix)
	}

	draft := strings.TrimSpace(b.String())
	if draft != "" && !strings.HasSuffix(draft, ".") {
		draft += "."
	}
	return draft, issues
}

// slotValue достаёт значение подстановки из извлечённых полей.
func slotValue(s slot, f extractors.Fields) (string, bool) {
	switch s {
	case slotAuthorInverted:
		if len(f.Authors) == 0 {
			return "", false
		}
		return f.Authors[0], true
	case slotTitle:
		return f.Title.Value, f.Title.Found
	case slotDirectAuthors:
		if len(f.Authors) == 0 {
			return "", false
		}
		direct := make([]string, len(f.Authors))
		for i, a := range f.Authors {
			direct[i] = invertToDirect(a)
		}
		return strings.Join(direct, ", "), true
	case slotCity:
		return f.City.Value, f.City.Found
	case slotPublisher:
		return f.Publisher.Value, f.Publisher.Found
	case slotYear:
		return f.Year.Value, f.Year.Found
	case slotPages:
		return f.Pages.Value, f.Pages.Found
	case slotJournal:
		return f.Journal.Value, f.Journal.Found
	case slotVolumeOnly:
		return f.Volume.Value, f.Volume.Found
	case slotVolumeIssue:
		switch {
		case f.Volume.Found && f.Issue.Found:
			return "Т. " + f.Volume.Value + ", № " + f.Issue.Value, true
		case f.Volume.Found:
			return "Т. " + f.Volume.Value, true
		case f.Issue.Found:
			return "№ " + f.Issue.Value, true
		}
		return "", false
	case slotURL:
		return f.URL.Value, f.URL.Found
	case slotAccessDate:
		return f.AccessDate.Value, f.AccessDate.Found
	}
	return "", false
}

// invertToDirect переводит автора из инвертированной формы
// "Фамилия, И. О." в прямую "И. О. Фамилия".
func invertToDirect(author string) string {
	family, initials, ok := strings.Cut(author, ",")
	if !ok {
		return author
	}
	return strings.TrimSpace(initials) + " " + strings.TrimSpace(family)
}
