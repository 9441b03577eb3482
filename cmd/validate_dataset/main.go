package main

import (
	"flag"
	"log"
	"os"

	"gostformatter/dataset"
)

func main() {
	var (
		input   = flag.String("input", "vak_dataset.json", "файл корпуса")
		cleanup = flag.Bool("cleanup", false, "исправить пунктуацию и перезаписать файл")
	)
	flag.Parse()

	corpus, err := dataset.LoadCorpus(*input)
	if err != nil {
		log.Fatalf("Ошибка чтения корпуса: %v", err)
	}

	if *cleanup {
		cleaned, changed := dataset.Cleanup(corpus)
		log.Printf("Исправлено записей: %d", changed)
		if changed > 0 {
			if err := dataset.NewExporter(cleaned).ExportToJSON(*input); err != nil {
				log.Fatalf("Ошибка записи корпуса: %v", err)
			}
			log.Printf("Корпус перезаписан: %s", *input)
		}
		corpus = cleaned
	}

	report := dataset.Validate(corpus)

	log.Printf("Всего записей: %d", report.Total)
	log.Printf("Чистых: %d", report.Clean)
	for _, structural := range report.Structural {
		log.Printf("Структурная ошибка: %s", structural)
	}
	for _, problem := range report.Problems {
		for _, msg := range problem.Structural {
			log.Printf("Запись %d [%s]: %s", problem.Index, problem.Type, msg)
		}
		for _, issue := range problem.Punctuation {
			log.Printf("Запись %d [%s]: %s", problem.Index, problem.Type, issue.Message)
		}
	}

	if !report.OK() {
		os.Exit(1)
	}
	log.Println("Корпус корректен")
}
