package dataset

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ensureUTF8 перекодирует содержимое файла из windows-1251, если оно
// не является корректным UTF-8. Корпусные файлы из старых выгрузок
// встречаются в обеих кодировках.
func ensureUTF8(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return data, nil
	}
	decoded, err := charmap.Windows1251.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode windows-1251: %w", err)
	}
	return decoded, nil
}
