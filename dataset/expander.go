package dataset

import (
	"fmt"
	"regexp"

	"github.com/brianvoe/gofakeit/v6"

	"gostformatter/classification"
	"gostformatter/normalization"
)

var (
	reVarYear      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	reVarPages     = regexp.MustCompile(`(\d{2,3})\s*с\.`)
	reVarPageRange = regexp.MustCompile(`С\.\s*\d+[–—-]\d+`)
	reVarVolume    = regexp.MustCompile(`Т\.\s*\d+`)
	reVarIssue     = regexp.MustCompile(`№\s*\d+`)
	reVarSurname   = regexp.MustCompile(`([А-ЯЁ][а-яё]+),\s+([А-ЯЁ]\.\s*[А-ЯЁ]?\.?)`)
)

// Expander размножает корпус вариациями существующих записей: меняет
// годы, страницы, номера и фамилии, сохраняя структуру оформления.
type Expander struct {
	faker *gofakeit.Faker
}

// NewExpander создает размножитель с заданным зерном.
func NewExpander(seed uint64) *Expander {
	return &Expander{faker: gofakeit.New(int64(seed))}
}

// Variate возвращает вариацию записи: та же структура, другие
// подставляемые значения. Результат нормализован.
func (e *Expander) Variate(example string) string {
	text := reVarYear.ReplaceAllStringFunc(example, func(string) string {
		return fmt.Sprintf("%d", e.faker.Number(2010, 2025))
	})
	text = replaceFirst(reVarPages, text, func(string) string {
		return fmt.Sprintf("%d с.", e.faker.Number(50, 600))
	})
	text = replaceFirst(reVarPageRange, text, func(string) string {
		start := e.faker.Number(5, 200)
		return fmt.Sprintf("С. %d–%d", start, start+e.faker.Number(3, 50))
	})
	text = replaceFirst(reVarVolume, text, func(string) string {
		return fmt.Sprintf("Т. %d", e.faker.Number(1, 50))
	})
	text = replaceFirst(reVarIssue, text, func(string) string {
		return fmt.Sprintf("№ %d", e.faker.Number(1, 12))
	})
	text = e.replaceSurnames(text)
	return normalization.Normalize(text)
}

// Expand доращивает корпус вариациями до targetCount записей, беря не
// больше variationsPerRecord вариаций с одного оригинала за круг.
// Оригиналы входят в результат. Записи неизвестного типа пропускаются.
func (e *Expander) Expand(c Corpus, targetCount, variationsPerRecord int) Corpus {
	records := make([]Record, len(c.Examples))
	copy(records, c.Examples)

	counters := make([]int, len(c.Examples))
	for len(records) < targetCount {
		added := false
		for i, orig := range c.Examples {
			if len(records) >= targetCount {
				break
			}
			if counters[i] >= variationsPerRecord {
				continue
			}
			if !orig.Type.IsValid() || orig.Type == classification.Unknown {
				continue
			}
			records = append(records, Record{Type: orig.Type, Example: e.Variate(orig.Example)})
			counters[i]++
			added = true
		}
		if !added {
			exhausted := false
			for i := range counters {
				if counters[i] > 0 {
					exhausted = true
				}
				counters[i] = 0
			}
			// Вариации брать не из чего, дальше корпус не вырастет.
			if !exhausted {
				break
			}
		}
	}

	distribution := make(map[classification.Category]int)
	for _, rec := range records {
		distribution[rec.Type]++
	}

	return Corpus{
		Description:      c.Description,
		Source:           c.Source,
		GeneratedAt:      c.GeneratedAt,
		TotalExamples:    len(records),
		TypeDistribution: distribution,
		Examples:         records,
	}
}

// replaceSurnames меняет каждую фамилию записи на новую, согласованно
// в обращенной ("Иванов, И. И.") и прямой ("И. И. Иванов") формах.
func (e *Expander) replaceSurnames(text string) string {
	matches := reVarSurname.FindAllStringSubmatch(text, -1)
	replacements := make(map[string]string)
	for _, m := range matches {
		if _, ok := replacements[m[1]]; !ok {
			replacements[m[1]] = surnamesRU[e.faker.Number(0, len(surnamesRU)-1)]
		}
	}

	for old, next := range replacements {
		quoted := regexp.QuoteMeta(old)
		reInverted := regexp.MustCompile(quoted + `(,\s+[А-ЯЁ]\.)`)
		text = reInverted.ReplaceAllString(text, next+"${1}")
		reDirect := regexp.MustCompile(`([А-ЯЁ]\.\s*[А-ЯЁ]?\.?\s+)` + quoted + `([^а-яё]|$)`)
		text = reDirect.ReplaceAllString(text, "${1}"+next+"${2}")
	}
	return text
}

func replaceFirst(re *regexp.Regexp, text string, repl func(match string) string) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + repl(text[loc[0]:loc[1]]) + text[loc[1]:]
}
