package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"gostformatter/database"
	"gostformatter/internal/config"
	"gostformatter/vakparser"
)

const originVak = "vak.gov.by"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	var (
		baseURL   = flag.String("url", cfg.VakBaseURL, "адрес сайта ВАК")
		dbPath    = flag.String("db", cfg.CorpusDatabasePath, "путь к базе корпуса")
		output    = flag.String("output", "", "дополнительно сохранить записи в JSON-файл")
		timeout   = flag.Duration("timeout", 30*time.Second, "таймаут запроса")
		rateLimit = flag.Duration("rate-limit", cfg.VakRateLimit, "пауза между запросами")
		replace   = flag.Bool("replace", false, "удалить прежний импорт перед записью")
	)
	flag.Parse()

	parser := vakparser.NewParser(*baseURL, *timeout, *rateLimit)

	log.Printf("Загрузка страницы %s/bibliographicDescription...", *baseURL)
	records, err := parser.Run(context.Background())
	if err != nil {
		log.Fatalf("Ошибка загрузки страницы ВАК: %v", err)
	}
	log.Printf("Снято записей: %d", len(records))

	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Ошибка создания файла: %v", err)
		}
		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(records); err != nil {
			file.Close()
			log.Fatalf("Ошибка записи JSON: %v", err)
		}
		file.Close()
		log.Printf("Записи сохранены: %s", *output)
	}

	db, err := database.NewCorpusDB(*dbPath)
	if err != nil {
		log.Fatalf("Ошибка открытия базы: %v", err)
	}
	defer db.Close()

	if *replace {
		deleted, err := db.DeleteByOrigin(originVak)
		if err != nil {
			log.Fatalf("Ошибка удаления прежнего импорта: %v", err)
		}
		log.Printf("Удалено прежних записей: %d", deleted)
	}

	corpusRecords := make([]database.CorpusRecord, len(records))
	for i, rec := range records {
		corpusRecords[i] = database.CorpusRecord{
			SourceType: rec.SourceType,
			Example:    rec.RawExample,
			Origin:     originVak,
			Confidence: rec.Confidence,
		}
	}
	stored, err := db.InsertBatch(corpusRecords)
	if err != nil {
		log.Fatalf("Ошибка сохранения в базу: %v", err)
	}
	log.Printf("В базу записано %d записей: %s", stored, *dbPath)
}
