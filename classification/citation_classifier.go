package classification

import (
	"regexp"
	"strings"
)

// Category — тип библиографической записи. Строковые значения
// совпадают с именами типов в корпусе примеров.
type Category string

const (
	BookFewAuthors     Category = "book_1_3_authors"
	BookManyAuthors    Category = "book_4plus_authors"
	JournalArticle     Category = "journal_article"
	CollectionArticle  Category = "collection_article"
	Dissertation       Category = "dissertation"
	Abstract           Category = "abstract"
	Law                Category = "law"
	Standard           Category = "standard"
	Patent             Category = "patent"
	Conference         Category = "conference"
	ElectronicResource Category = "electronic_resource"
	NewspaperArticle   Category = "newspaper_article"
	Preprint           Category = "preprint"
	Multimedia         Category = "multimedia"
	Map                Category = "map"
	MusicScore         Category = "music_score"
	VisualMaterial     Category = "visual_material"
	Archive            Category = "archive"
	ResearchReport     Category = "research_report"
	Deposited          Category = "deposited"
	Multivolume        Category = "multivolume"
	Review             Category = "review"
	Catalog            Category = "catalog"
	MethodicalGuide    Category = "methodical_guide"
	Unknown            Category = "unknown"
)

// AllCategories — все категории в порядке, принятом в корпусе.
var AllCategories = []Category{
	BookFewAuthors, BookManyAuthors, JournalArticle, CollectionArticle,
	Dissertation, Abstract, Law, Standard, Patent, Conference,
	ElectronicResource, NewspaperArticle, Preprint, Multimedia, Map,
	MusicScore, VisualMaterial, Archive, ResearchReport, Deposited,
	Multivolume, Review, Catalog, MethodicalGuide, Unknown,
}

// IsValid сообщает, известна ли категория.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

var (
	rePatent       = regexp.MustCompile(`пат\.\s*[A-Z]{2}|а\.\s*с\.\s*[A-Z]{2}|полез\.\s*модель`)
	reDissertation = regexp.MustCompile(`дис\.\s*\.{3}|дыс\.\s*\.{3}`)
	reStandard     = regexp.MustCompile(`гост\s*\d|стб\s*\d|ткп\s*\d|тр\s*тс\s*\d`)
	// \b в RE2 знает только ASCII, поэтому границы кириллических слов
	// выписаны явно через \P{L}.
	reLawStrong     = regexp.MustCompile(`(^|\P{L})кодекс($|\P{L})`)
	reLawAct        = regexp.MustCompile(`(^|\P{L})(закон|указ|декрет)($|\P{L})|(^|\P{L})постановлени|приказ\s+\S+\.`)
	reConference    = regexp.MustCompile(`матер.*конф|тезис.*докл|чтения\s*:`)
	reCollection    = regexp.MustCompile(`сб\.\s*(науч\.|ст\.|тр\.)`)
	reJournalMark   = regexp.MustCompile(`[ТT]\.\s*\d|№\s*\d`)
	reNewspaperMark = regexp.MustCompile(`\.by\b|газет`)
	reAuthorCount   = regexp.MustCompile(`([А-ЯЁA-Z][а-яёa-z]+),\s+[А-ЯЁA-Z]\.`)
	reMultivolume   = regexp.MustCompile(`(^|\s)[ву]\s+\d+\s+т\.`)
	reArchiveFund   = regexp.MustCompile(`ф\.\s*\d+\.?\s*оп\.\s*\d+`)
	reResearchRep   = regexp.MustCompile(`отч[её]т\s+о\s+нир`)
	reMethodical    = regexp.MustCompile(`метод\.\s*(указания|рекомендации)`)
)

// rule — одна проверка классификатора. Правила применяются по
// порядку: узкие лексические признаки идут раньше широких
// структурных, иначе диссертация с числом авторов как у книги
// классифицировалась бы как книга.
type rule struct {
	name     string
	category Category
	match    func(text, lower string) bool
}

var rules = []rule{
	{"звукозапись или видеозапись", Multimedia, func(_, lower string) bool {
		return strings.Contains(lower, "[звукозапись]") || strings.Contains(lower, "[видеозапись]")
	}},
	{"изоматериал или плакат", VisualMaterial, func(_, lower string) bool {
		return strings.Contains(lower, "[изоматериал]") || strings.Contains(lower, "плакат]")
	}},
	{"ноты", MusicScore, func(_, lower string) bool {
		return strings.Contains(lower, "[ноты]")
	}},
	{"картографический материал", Map, func(_, lower string) bool {
		return strings.Contains(lower, "[карт")
	}},
	{"охранный документ", Patent, func(text, _ string) bool {
		return rePatent.MatchString(text)
	}},
	{"диссертация", Dissertation, func(_, lower string) bool {
		return reDissertation.MatchString(lower)
	}},
	{"автореферат", Abstract, func(_, lower string) bool {
		return strings.Contains(lower, "автореф")
	}},
	{"препринт", Preprint, func(_, lower string) bool {
		return strings.Contains(lower, "препринт")
	}},
	{"код стандарта", Standard, func(_, lower string) bool {
		return reStandard.MatchString(lower)
	}},
	{"конституция или кодекс", Law, func(_, lower string) bool {
		return strings.Contains(lower, "конституц") || reLawStrong.MatchString(lower)
	}},
	{"нормативный акт", Law, func(_, lower string) bool {
		return reLawAct.MatchString(lower)
	}},
	{"материалы конференции", Conference, func(_, lower string) bool {
		return reConference.MatchString(lower)
	}},
	{"статья в сборнике", CollectionArticle, func(_, lower string) bool {
		return reCollection.MatchString(lower)
	}},
	{"рецензия", Review, func(_, lower string) bool {
		return strings.Contains(lower, "рец. на кн.") || strings.Contains(lower, "[рецензия]")
	}},
	{"депонированная рукопись", Deposited, func(_, lower string) bool {
		return strings.Contains(lower, "деп. в ")
	}},
	{"отчет о НИР", ResearchReport, func(_, lower string) bool {
		return reResearchRep.MatchString(lower)
	}},
	{"архивный документ", Archive, func(_, lower string) bool {
		return reArchiveFund.MatchString(lower)
	}},
	{"многотомное издание", Multivolume, func(_, lower string) bool {
		return reMultivolume.MatchString(lower)
	}},
	{"методические указания", MethodicalGuide, func(_, lower string) bool {
		return reMethodical.MatchString(lower)
	}},
	{"каталог", Catalog, func(_, lower string) bool {
		return strings.HasPrefix(lower, "каталог")
	}},
	{"статья в журнале", JournalArticle, func(text, _ string) bool {
		after, ok := afterDoubleSlash(text)
		return ok && reJournalMark.MatchString(after)
	}},
	{"статья в газете", NewspaperArticle, func(text, _ string) bool {
		after, ok := afterDoubleSlash(text)
		return ok && reNewspaperMark.MatchString(strings.ToLower(after))
	}},
	{"пометка [и др.]", BookManyAuthors, func(text, _ string) bool {
		return strings.Contains(text, "[и др.]") || strings.Contains(text, "[et al.]")
	}},
	{"четыре и более авторов", BookManyAuthors, func(text, _ string) bool {
		return countAuthors(text) >= 4
	}},
	{"от одного до трех авторов", BookFewAuthors, func(text, _ string) bool {
		return countAuthors(text) >= 1
	}},
	{"электронный ресурс", ElectronicResource, func(_, lower string) bool {
		return strings.Contains(lower, "[электронный ресурс]")
	}},
}

// Classify определяет категорию записи по упорядоченному списку
// правил. Отсутствие признаков не ошибка: возвращается Unknown.
func Classify(text string) Category {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.match(text, lower) {
			return r.category
		}
	}
	return Unknown
}

// afterDoubleSlash возвращает часть записи после разделителя " // ",
// то есть сведения об источнике, в котором опубликована работа.
func afterDoubleSlash(text string) (string, bool) {
	idx := strings.Index(text, " // ")
	if idx < 0 {
		return "", false
	}
	return text[idx+len(" // "):], true
}

// countAuthors считает различных авторов в форме "Фамилия, И.".
func countAuthors(text string) int {
	seen := make(map[string]struct{})
	for _, m := range reAuthorCount.FindAllStringSubmatch(text, -1) {
		seen[m[1]] = struct{}{}
	}
	return len(seen)
}
