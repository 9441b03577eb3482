package dataset

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"gostformatter/classification"
)

func testCorpus() Corpus {
	return Corpus{
		Description:   "тестовый корпус",
		Source:        "тест",
		GeneratedAt:   "2025-01-01",
		TotalExamples: 2,
		TypeDistribution: map[classification.Category]int{
			classification.BookFewAuthors: 1,
			classification.JournalArticle: 1,
		},
		Examples: []Record{
			{Type: classification.BookFewAuthors, Example: "Иванов, И. П. Основы экономики / И. П. Иванов. – Минск : БГУ, 2015. – 200 с."},
			{Type: classification.JournalArticle, Example: "Иванов, И. П. Статья / И. П. Иванов // Полымя. – 2020. – № 2. – С. 5–9."},
		},
	}
}

func TestExportToJSONRoundTrip(t *testing.T) {
	c := testCorpus()
	filename := filepath.Join(t.TempDir(), "corpus.json")

	if err := NewExporter(c).Export(FormatJSON, filename); err != nil {
		t.Fatalf("Export: %v", err)
	}
	loaded, err := LoadCorpus(filename)
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}

	if loaded.Description != c.Description || loaded.TotalExamples != c.TotalExamples {
		t.Errorf("метаданные потеряны: %+v", loaded)
	}
	if len(loaded.Examples) != len(c.Examples) {
		t.Fatalf("len = %d", len(loaded.Examples))
	}
	for i := range c.Examples {
		if loaded.Examples[i] != c.Examples[i] {
			t.Errorf("запись %d: %+v != %+v", i, loaded.Examples[i], c.Examples[i])
		}
	}
}

func TestLoadCorpusWindows1251(t *testing.T) {
	c := testCorpus()
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	encoded, err := charmap.Windows1251.NewEncoder().Bytes(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	filename := filepath.Join(t.TempDir(), "corpus_1251.json")
	if err := os.WriteFile(filename, encoded, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := LoadCorpus(filename)
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if len(loaded.Examples) != len(c.Examples) {
		t.Fatalf("len = %d", len(loaded.Examples))
	}
	if loaded.Examples[0].Example != c.Examples[0].Example {
		t.Errorf("Example = %q", loaded.Examples[0].Example)
	}
}

func TestExportToCSV(t *testing.T) {
	c := testCorpus()
	filename := filepath.Join(t.TempDir(), "corpus.csv")

	if err := NewExporter(c).Export(FormatCSV, filename); err != nil {
		t.Fatalf("Export: %v", err)
	}

	file, err := os.Open(filename)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d", len(rows))
	}
	if rows[0][0] != "Type" || rows[0][1] != "Example" {
		t.Errorf("заголовки: %v", rows[0])
	}
	if rows[1][0] != string(classification.BookFewAuthors) {
		t.Errorf("rows[1][0] = %q", rows[1][0])
	}
	if rows[2][1] != c.Examples[1].Example {
		t.Errorf("rows[2][1] = %q", rows[2][1])
	}
}

func TestExportToExcel(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "corpus.xlsx")

	if err := NewExporter(testCorpus()).Export(FormatExcel, filename); err != nil {
		t.Fatalf("Export: %v", err)
	}
	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("пустой файл")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	if err := NewExporter(testCorpus()).Export("xml", "corpus.xml"); err == nil {
		t.Error("ожидалась ошибка для неизвестного формата")
	}
}
