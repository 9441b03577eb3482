package services

import (
	"context"
	"log/slog"

	"gostformatter/classification"
	"gostformatter/database"
	"gostformatter/dataset"
	apperrors "gostformatter/server/errors"
)

// origin записей, порожденных генератором
const originGenerated = "generated"

const maxGenerateTarget = 50000

// GenerateParams параметры генерации корпуса
type GenerateParams struct {
	Seed                uint64 `json:"seed"`
	TargetCount         int    `json:"target_count,omitempty"`
	VariationsPerRecord int    `json:"variations_per_record,omitempty"`
	Store               bool   `json:"store,omitempty"`
}

// GenerateSummary итог генерации корпуса
type GenerateSummary struct {
	TotalExamples    int                             `json:"total_examples"`
	TypeDistribution map[classification.Category]int `json:"type_distribution"`
	Stored           int                             `json:"stored"`
	CleanRecords     int                             `json:"clean_records"`
	ProblemRecords   int                             `json:"problem_records"`
}

// DatasetService управляет синтетическим корпусом: генерация,
// расширение, проверка и хранение в базе.
type DatasetService struct {
	db     *database.CorpusDB
	logger *slog.Logger
}

// NewDatasetService создает сервис корпуса. База может отсутствовать,
// тогда генерация работает без сохранения.
func NewDatasetService(db *database.CorpusDB, logger *slog.Logger) *DatasetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatasetService{db: db, logger: logger}
}

// Generate строит корпус примеров: базовая генерация по распределению,
// при заданном целевом размере расширение вариациями, затем проверка
// и, по запросу, сохранение в базе.
func (s *DatasetService) Generate(ctx context.Context, params GenerateParams) (*GenerateSummary, *apperrors.AppError) {
	if params.TargetCount < 0 {
		return nil, apperrors.NewValidationError("целевой размер корпуса не может быть отрицательным", nil)
	}
	if params.TargetCount > maxGenerateTarget {
		return nil, apperrors.NewValidationError("целевой размер корпуса слишком велик", nil)
	}
	if params.Store && s.db == nil {
		return nil, apperrors.NewServiceUnavailableError("хранилище корпуса не подключено", nil)
	}

	corpus := dataset.NewGenerator(params.Seed).Generate(nil)

	if params.TargetCount > len(corpus.Examples) {
		variations := params.VariationsPerRecord
		if variations <= 0 {
			variations = 3
		}
		corpus = dataset.NewExpander(params.Seed).Expand(corpus, params.TargetCount, variations)
	}

	report := dataset.Validate(corpus)

	summary := &GenerateSummary{
		TotalExamples:    corpus.TotalExamples,
		TypeDistribution: corpus.TypeDistribution,
		CleanRecords:     report.Clean,
		ProblemRecords:   len(report.Problems),
	}

	if params.Store {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.NewInternalError("генерация прервана", err)
		}
		records := make([]database.CorpusRecord, len(corpus.Examples))
		for i, rec := range corpus.Examples {
			records[i] = database.CorpusRecord{
				SourceType: rec.Type,
				Example:    rec.Example,
				Origin:     originGenerated,
				Confidence: 100,
			}
		}
		stored, err := s.db.InsertBatch(records)
		if err != nil {
			return nil, apperrors.NewInternalError("не удалось сохранить корпус", err)
		}
		summary.Stored = stored
	}

	s.logger.Info("корпус сгенерирован",
		"total", summary.TotalExamples,
		"clean", summary.CleanRecords,
		"problems", summary.ProblemRecords,
		"stored", summary.Stored,
	)
	return summary, nil
}

// Stats возвращает сводку по хранилищу корпуса.
func (s *DatasetService) Stats(ctx context.Context) (*database.CorpusStats, *apperrors.AppError) {
	if s.db == nil {
		return nil, apperrors.NewServiceUnavailableError("хранилище корпуса не подключено", nil)
	}
	stats, err := s.db.GetStats()
	if err != nil {
		return nil, apperrors.NewInternalError("не удалось получить статистику корпуса", err)
	}
	return stats, nil
}

// Examples возвращает записи хранилища с фильтром по типу и источнику.
func (s *DatasetService) Examples(ctx context.Context, sourceType classification.Category, origin string, limit int) ([]database.CorpusRecord, *apperrors.AppError) {
	if s.db == nil {
		return nil, apperrors.NewServiceUnavailableError("хранилище корпуса не подключено", nil)
	}
	if sourceType != "" && !sourceType.IsValid() {
		return nil, apperrors.NewValidationError("неизвестный тип записи: "+string(sourceType), nil)
	}
	records, err := s.db.ListRecords(sourceType, origin, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("не удалось прочитать корпус", err)
	}
	return records, nil
}
