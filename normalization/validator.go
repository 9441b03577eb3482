package normalization

import (
	"fmt"
	"regexp"
	"strconv"
)

// IssueCode — код замечания к пунктуации записи.
type IssueCode string

const (
	// IssueMissingSpaceAfterDash — после тире-разделителя нет пробела.
	IssueMissingSpaceAfterDash IssueCode = "missing_space_after_dash"
	// IssueMissingSpaceAfterColon — после двоеточия нет пробела.
	IssueMissingSpaceAfterColon IssueCode = "missing_space_after_colon"
	// IssueMissingSpaceAfterInitials — инициалы слиплись со следующим словом.
	IssueMissingSpaceAfterInitials IssueCode = "missing_space_after_initials"
	// IssueSpaceInRange — пробелы внутри числового диапазона.
	IssueSpaceInRange IssueCode = "space_in_range"
	// IssueDoubleSpace — двойной пробел.
	IssueDoubleSpace IssueCode = "double_space"
	// IssueAmbiguousRange — дефис между числами, который может быть как
	// диапазоном лет, так и номером стандарта.
	IssueAmbiguousRange IssueCode = "ambiguous_range"
	// IssueHyphenInPageRange — дефис вместо тире в диапазоне страниц.
	IssueHyphenInPageRange IssueCode = "hyphen_in_page_range"
)

// Issue — одно замечание валидатора пунктуации.
type Issue struct {
	Code    IssueCode `json:"code"`
	Message string    `json:"message"`
}

var (
	reCheckDash     = regexp.MustCompile(`\. –[^\s\d]`)
	reCheckColon    = regexp.MustCompile(`:[\p{L}]`)
	reCheckInitials = regexp.MustCompile(`\p{L}\. \p{L}\.\p{Lu}`)
	reCheckRanges   = []*regexp.Regexp{
		regexp.MustCompile(`\d – \d`),
		regexp.MustCompile(`\d –\d`),
		regexp.MustCompile(`\d– \d`),
	}
	reCheckDouble   = regexp.MustCompile(`\S {2,}\S`)
	reCheckYearPair = regexp.MustCompile(`(\d{4})-(\d{4})`)
	rePageHyphen    = regexp.MustCompile(`С\. \d+-\d+`)
)

// CheckPunctuation проверяет запись на типовые ошибки пунктуации и
// возвращает список замечаний. Текст не изменяется: проверка нужна,
// чтобы отчитаться о качестве корпуса, а не чтобы чинить записи.
func CheckPunctuation(text string) []Issue {
	var issues []Issue

	if loc := reCheckDash.FindString(text); loc != "" {
		issues = append(issues, Issue{
			Code:    IssueMissingSpaceAfterDash,
			Message: fmt.Sprintf("нет пробела после тире: %q", loc),
		})
	}
	if loc := reCheckColon.FindString(text); loc != "" {
		issues = append(issues, Issue{
			Code:    IssueMissingSpaceAfterColon,
			Message: fmt.Sprintf("нет пробела после двоеточия: %q", loc),
		})
	}
	if loc := reCheckInitials.FindString(text); loc != "" {
		issues = append(issues, Issue{
			Code:    IssueMissingSpaceAfterInitials,
			Message: fmt.Sprintf("инициалы слиплись со словом: %q", loc),
		})
	}
	for _, re := range reCheckRanges {
		if loc := re.FindString(text); loc != "" {
			issues = append(issues, Issue{
				Code:    IssueSpaceInRange,
				Message: fmt.Sprintf("пробел внутри диапазона: %q", loc),
			})
			break
		}
	}
	if reCheckDouble.MatchString(text) {
		issues = append(issues, Issue{Code: IssueDoubleSpace, Message: "двойной пробел"})
	}
	for _, m := range reCheckYearPair.FindAllStringSubmatch(text, -1) {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		if isPlausibleYear(first) && isPlausibleYear(second) && first < second {
			issues = append(issues, Issue{
				Code:    IssueAmbiguousRange,
				Message: fmt.Sprintf("дефис вместо тире в диапазоне лет: %q", m[0]),
			})
		}
	}
	if loc := rePageHyphen.FindString(text); loc != "" {
		issues = append(issues, Issue{
			Code:    IssueHyphenInPageRange,
			Message: fmt.Sprintf("дефис вместо тире в диапазоне страниц: %q", loc),
		})
	}

	return issues
}
