package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// ExportFormat формат экспорта корпуса
type ExportFormat string

const (
	FormatJSON  ExportFormat = "json"
	FormatCSV   ExportFormat = "csv"
	FormatExcel ExportFormat = "excel"
)

// Exporter экспортер корпуса
type Exporter struct {
	corpus Corpus
}

// NewExporter создает новый экспортер
func NewExporter(c Corpus) *Exporter {
	return &Exporter{corpus: c}
}

// Export выгружает корпус в заданном формате.
func (e *Exporter) Export(format ExportFormat, filename string) error {
	switch format {
	case FormatJSON:
		return e.ExportToJSON(filename)
	case FormatCSV:
		return e.ExportToCSV(filename)
	case FormatExcel:
		return e.ExportToExcel(filename)
	default:
		return fmt.Errorf("неизвестный формат экспорта %q", format)
	}
}

// ExportToJSON выгружает корпус в JSON. Файл читается обратно
// функцией LoadCorpus без потерь.
func (e *Exporter) ExportToJSON(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(e.corpus); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// ExportToCSV выгружает записи корпуса в CSV
func (e *Exporter) ExportToCSV(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Type", "Example"}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for _, rec := range e.corpus.Examples {
		if err := writer.Write([]string{string(rec.Type), rec.Example}); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// ExportToExcel выгружает записи корпуса в Excel
func (e *Exporter) ExportToExcel(filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Dataset"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Type", "Example"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, rec := range e.corpus.Examples {
		row := rowIdx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), string(rec.Type))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rec.Example)
	}

	f.SetColWidth(sheetName, "A", "A", 22)
	f.SetColWidth(sheetName, "B", "B", 120)
	f.SetActiveSheet(index)

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

// LoadCorpus читает корпус из JSON-файла. Файлы в windows-1251
// перекодируются перед разбором.
func LoadCorpus(filename string) (Corpus, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Corpus{}, fmt.Errorf("failed to read file: %w", err)
	}
	data, err = ensureUTF8(data)
	if err != nil {
		return Corpus{}, err
	}
	var c Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return Corpus{}, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return c, nil
}
