package services

import (
	"context"
	"errors"
	"strings"

	"gostformatter/metadata"
	"gostformatter/pipeline"
	apperrors "gostformatter/server/errors"
)

// MetadataLookup ищет сведения об издании по DOI или ISBN.
type MetadataLookup interface {
	Lookup(ctx context.Context, identifier string) (*metadata.Metadata, error)
}

// LookupResult сведения реестра вместе с результатом их оформления
type LookupResult struct {
	Metadata  *metadata.Metadata `json:"metadata"`
	Formatted string             `json:"formatted"`
	Issues    []pipeline.Issue   `json:"issues,omitempty"`
}

// MetadataService ищет записи во внешних реестрах и прогоняет ответ
// через конвейер оформления.
type MetadataService struct {
	lookup   MetadataLookup
	pipeline *pipeline.Pipeline
}

// NewMetadataService создает сервис поиска метаданных.
func NewMetadataService(lookup MetadataLookup, p *pipeline.Pipeline) *MetadataService {
	return &MetadataService{lookup: lookup, pipeline: p}
}

// Lookup распознает идентификатор, запрашивает реестр и оформляет
// найденную запись.
func (s *MetadataService) Lookup(ctx context.Context, identifier string) (*LookupResult, *apperrors.AppError) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, apperrors.NewValidationError("идентификатор пуст", nil)
	}

	m, err := s.lookup.Lookup(ctx, identifier)
	if err != nil {
		switch {
		case errors.Is(err, metadata.ErrUnknownIdentifier):
			return nil, apperrors.NewValidationError("не удалось распознать идентификатор: "+identifier, err)
		case errors.Is(err, metadata.ErrNotFound):
			return nil, apperrors.NewNotFoundError("запись по идентификатору не найдена: "+identifier, err)
		default:
			return nil, apperrors.NewBadGatewayError("внешний реестр недоступен", err)
		}
	}

	res := s.pipeline.Process(ctx, m.Citation())
	return &LookupResult{
		Metadata:  m,
		Formatted: res.Formatted,
		Issues:    res.Issues,
	}, nil
}
