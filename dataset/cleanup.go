package dataset

import "gostformatter/normalization"

// Cleanup прогоняет каждую запись корпуса через нормализацию
// пунктуации. Возвращает исправленный корпус и число изменённых
// записей.
func Cleanup(c Corpus) (Corpus, int) {
	out := c
	out.Examples = make([]Record, len(c.Examples))

	changed := 0
	for i, rec := range c.Examples {
		fixed := normalization.Normalize(rec.Example)
		if fixed != rec.Example {
			changed++
		}
		out.Examples[i] = Record{Type: rec.Type, Example: fixed}
	}
	return out, changed
}
