package metadata

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownIdentifier строка не похожа ни на DOI, ни на ISBN.
var ErrUnknownIdentifier = errors.New("не удалось распознать идентификатор")

// IdentifierKind вид библиографического идентификатора
type IdentifierKind string

const (
	KindDOI  IdentifierKind = "doi"
	KindISBN IdentifierKind = "isbn"
)

var reDOI = regexp.MustCompile(`^10\.\d{4,}/[^\s]+$`)

// NormalizeDOI приводит DOI к канонической форме: убирает префиксы
// doi: и https://doi.org/ и проверяет синтаксис.
func NormalizeDOI(raw string) (string, error) {
	doi := strings.TrimSpace(raw)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi:")
	doi = strings.TrimSpace(doi)

	if !reDOI.MatchString(doi) {
		return "", fmt.Errorf("некорректный DOI: %q", raw)
	}
	return doi, nil
}

// NormalizeISBN убирает разделители и проверяет длину (10 или 13 знаков).
func NormalizeISBN(raw string) (string, error) {
	isbn := strings.TrimSpace(raw)
	isbn = strings.TrimPrefix(strings.ToUpper(isbn), "ISBN")
	isbn = strings.NewReplacer("-", "", " ", "", ":", "").Replace(isbn)

	if len(isbn) != 10 && len(isbn) != 13 {
		return "", fmt.Errorf("некорректная длина ISBN: %q", raw)
	}
	for i, r := range isbn {
		if r >= '0' && r <= '9' {
			continue
		}
		// Контрольный знак ISBN-10 может быть X.
		if r == 'X' && i == 9 && len(isbn) == 10 {
			continue
		}
		return "", fmt.Errorf("недопустимый символ в ISBN: %q", raw)
	}
	return isbn, nil
}

// DetectIdentifier распознает вид идентификатора и возвращает его
// каноническую форму.
func DetectIdentifier(raw string) (IdentifierKind, string, error) {
	if doi, err := NormalizeDOI(raw); err == nil {
		return KindDOI, doi, nil
	}
	if isbn, err := NormalizeISBN(raw); err == nil {
		return KindISBN, isbn, nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnknownIdentifier, raw)
}
