package main

import (
	"flag"
	"log"

	"gostformatter/database"
	"gostformatter/dataset"
)

func main() {
	var (
		seed       = flag.Uint64("seed", 42, "зерно генератора")
		target     = flag.Int("target", 0, "целевой размер корпуса (0 — только базовая генерация)")
		variations = flag.Int("variations", 3, "вариаций на запись при расширении")
		output     = flag.String("output", "vak_dataset.json", "файл результата")
		format     = flag.String("format", "json", "формат выгрузки: json, csv, excel")
		dbPath     = flag.String("db", "", "путь к базе корпуса для сохранения (пусто — не сохранять)")
	)
	flag.Parse()

	log.Printf("Генерация корпуса (seed=%d)...", *seed)
	corpus := dataset.NewGenerator(*seed).Generate(nil)
	log.Printf("Сгенерировано %d примеров", corpus.TotalExamples)

	if *target > corpus.TotalExamples {
		log.Printf("Расширение до %d записей...", *target)
		corpus = dataset.NewExpander(*seed).Expand(corpus, *target, *variations)
		log.Printf("После расширения: %d примеров", corpus.TotalExamples)
	}

	report := dataset.Validate(corpus)
	log.Printf("Проверка: %d чистых, %d с замечаниями, %d структурных ошибок",
		report.Clean, len(report.Problems), len(report.Structural))

	if err := dataset.NewExporter(corpus).Export(dataset.ExportFormat(*format), *output); err != nil {
		log.Fatalf("Ошибка выгрузки: %v", err)
	}
	log.Printf("Корпус сохранен: %s", *output)

	if *dbPath != "" {
		db, err := database.NewCorpusDB(*dbPath)
		if err != nil {
			log.Fatalf("Ошибка открытия базы: %v", err)
		}
		defer db.Close()

		records := make([]database.CorpusRecord, len(corpus.Examples))
		for i, rec := range corpus.Examples {
			records[i] = database.CorpusRecord{
				SourceType: rec.Type,
				Example:    rec.Example,
				Origin:     "generated",
				Confidence: 100,
			}
		}
		stored, err := db.InsertBatch(records)
		if err != nil {
			log.Fatalf("Ошибка сохранения в базу: %v", err)
		}
		log.Printf("В базу записано %d записей: %s", stored, *dbPath)
	}
}
