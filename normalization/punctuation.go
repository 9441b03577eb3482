package normalization

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Маркер, которым на время обработки заменяется библиографическое
// многоточие ("дис. ... канд. наук"), чтобы правила схлопывания точек
// его не разрушили.
const ellipsisSentinel = "<<<ELLIPSIS>>>"

// Rule — один именованный шаг нормализации пунктуации. Правила
// применяются строго по порядку, каждое правило тестируется отдельно.
type Rule struct {
	Name  string
	Apply func(text string, issues *[]Issue) string
}

var (
	reDoublePeriod     = regexp.MustCompile(`([а-яёa-z])\.\.([^.])`)
	reDoublePeriodEnd  = regexp.MustCompile(`([а-яёa-z])\.\.$`)
	reMultiSpace       = regexp.MustCompile(`\s{2,}`)
	reDashNoSpace      = regexp.MustCompile(`\. –(\d+[–-]\d+|\S)`)
	reRangeAfterDash   = regexp.MustCompile(`^\d+[–-]\d+`)
	reColonNoSpace     = regexp.MustCompile(`:([\p{L}])`)
	reRangeSpaceBoth   = regexp.MustCompile(`(\d) – (\d)`)
	reRangeSpaceLeft   = regexp.MustCompile(`(\d) –(\d)`)
	reRangeSpaceRight  = regexp.MustCompile(`(\d)– (\d)`)
	rePageRange        = regexp.MustCompile(`С\. (\d+) ?– ?(\d+)`)
	reYearHyphen       = regexp.MustCompile(`(\d{4})-(\d{4})`)
	reInitialsTight    = regexp.MustCompile(`(\p{L}\. \p{L}\.)(\p{Lu})`)
	reNumberSign       = regexp.MustCompile(`№([\p{L}\d])`)
	reVolumeTight      = regexp.MustCompile(`(Т|Вып|кн)\.(\d)`)
	reSpaceBeforeDot   = regexp.MustCompile(` +\.`)
	reSpaceBeforeComma = regexp.MustCompile(` +,`)
)

// Rules — упорядоченный конвейер правил нормализации. Порядок значим:
// правила про диапазоны предполагают, что пробелы вокруг тире уже
// нормализованы предыдущими шагами.
var Rules = []Rule{
	{
		Name: "protect_ellipsis",
		Apply: func(text string, _ *[]Issue) string {
			return strings.ReplaceAll(text, ". ... ", ". "+ellipsisSentinel+" ")
		},
	},
	{
		Name: "collapse_double_periods",
		Apply: func(text string, _ *[]Issue) string {
			text = reDoublePeriod.ReplaceAllString(text, "$1.$2")
			return reDoublePeriodEnd.ReplaceAllString(text, "$1.")
		},
	},
	{
		Name: "collapse_spaces",
		Apply: func(text string, _ *[]Issue) string {
			return reMultiSpace.ReplaceAllString(text, " ")
		},
	},
	{
		Name: "space_after_dash",
		Apply: func(text string, _ *[]Issue) string {
			// Пробел после тире-разделителя, но не когда тире открывает
			// числовой диапазон вида "–45–52". Шаблон захватывает либо
			// весь диапазон, либо один символ, поэтому проверка видит
			// диапазон целиком.
			return reDashNoSpace.ReplaceAllStringFunc(text, func(m string) string {
				rest := m[len(". –"):]
				if reRangeAfterDash.MatchString(rest) {
					return m
				}
				return ". – " + rest
			})
		},
	},
	{
		Name: "space_after_colon",
		Apply: func(text string, _ *[]Issue) string {
			// "//" после "http:" защищает URL: двоеточие там стоит
			// перед слэшем, а не перед буквой.
			return reColonNoSpace.ReplaceAllString(text, ": $1")
		},
	},
	{
		Name: "tighten_numeric_ranges",
		Apply: func(text string, _ *[]Issue) string {
			text = reRangeSpaceBoth.ReplaceAllString(text, "$1–$2")
			text = reRangeSpaceLeft.ReplaceAllString(text, "$1–$2")
			return reRangeSpaceRight.ReplaceAllString(text, "$1–$2")
		},
	},
	{
		Name: "collapse_page_range",
		Apply: func(text string, _ *[]Issue) string {
			return rePageRange.ReplaceAllString(text, "С. $1–$2")
		},
	},
	{
		Name: "year_range_hyphen",
		Apply: func(text string, issues *[]Issue) string {
			// Дефис между двумя четырёхзначными числами переписывается
			// на тире только когда оба числа похожи на годы и первое
			// строго меньше второго. Номера стандартов ("7.22-2003")
			// остаются как есть, сомнительные случаи попадают в issues.
			return reYearHyphen.ReplaceAllStringFunc(text, func(m string) string {
				parts := reYearHyphen.FindStringSubmatch(m)
				first, _ := strconv.Atoi(parts[1])
				second, _ := strconv.Atoi(parts[2])
				if isPlausibleYear(first) && isPlausibleYear(second) && first < second {
					return parts[1] + "–" + parts[2]
				}
				if issues != nil {
					*issues = append(*issues, Issue{
						Code:    IssueAmbiguousRange,
						Message: fmt.Sprintf("дефис между числами %q: не удалось отличить диапазон лет от номера", m),
					})
				}
				return m
			})
		},
	},
	{
		Name: "space_after_initials",
		Apply: func(text string, _ *[]Issue) string {
			return reInitialsTight.ReplaceAllString(text, "$1 $2")
		},
	},
	{
		Name: "space_after_abbreviations",
		Apply: func(text string, _ *[]Issue) string {
			text = reNumberSign.ReplaceAllString(text, "№ $1")
			return reVolumeTight.ReplaceAllString(text, "$1. $2")
		},
	},
	{
		Name: "strip_space_before_punct",
		Apply: func(text string, _ *[]Issue) string {
			text = reSpaceBeforeDot.ReplaceAllString(text, ".")
			return reSpaceBeforeComma.ReplaceAllString(text, ",")
		},
	},
	{
		Name: "restore_ellipsis",
		Apply: func(text string, _ *[]Issue) string {
			return strings.ReplaceAll(text, ellipsisSentinel, "...")
		},
	},
}

// Normalize приводит пунктуацию библиографической записи к канону
// ГОСТ 7.1. Функция идемпотентна: повторный вызов не меняет результат.
func Normalize(text string) string {
	normalized, _ := NormalizeWithIssues(text)
	return normalized
}

// NormalizeWithIssues нормализует текст и возвращает замечания,
// которые нормализатор не стал исправлять автоматически.
func NormalizeWithIssues(text string) (string, []Issue) {
	var issues []Issue
	for _, rule := range Rules {
		text = rule.Apply(text, &issues)
	}
	return strings.TrimSpace(text), issues
}

// isPlausibleYear сообщает, похоже ли число на год издания.
func isPlausibleYear(n int) bool {
	return n >= 1990 && n <= 2030
}
