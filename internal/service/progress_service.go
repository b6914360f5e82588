package service

import (
	"fmt"
	"time"

	"dailylect/internal/catalog"
	"dailylect/internal/models"
	"dailylect/internal/progress"
	"dailylect/internal/repository"
)

// ProgressService assembles the dashboard view: it fetches a user's quiz
// results and login days, then hands them to the pure aggregator.
type ProgressService struct {
	catalog    *catalog.Catalog
	loginRepo  *repository.LoginRepository
	resultRepo *repository.ResultRepository
}

// NewProgressService creates a new progress service
func NewProgressService(cat *catalog.Catalog, loginRepo *repository.LoginRepository, resultRepo *repository.ResultRepository) *ProgressService {
	return &ProgressService{
		catalog:    cat,
		loginRepo:  loginRepo,
		resultRepo: resultRepo,
	}
}

// GetProgress computes the full dashboard summary for a user. Both fetches
// complete before aggregation runs; the aggregator never sees partial data.
func (s *ProgressService) GetProgress(userID int64, now time.Time) (models.UserProgress, error) {
	results, err := s.resultRepo.ListResults(userID)
	if err != nil {
		return models.UserProgress{}, fmt.Errorf("failed to list quiz results: %w", err)
	}

	days, err := s.loginRepo.ListLoginDays(userID)
	if err != nil {
		return models.UserProgress{}, fmt.Errorf("failed to list login days: %w", err)
	}

	return progress.Compute(results, days, now), nil
}

// LearnedWords resolves the user's learned word IDs against the catalog.
// IDs that no longer resolve (catalog edits between releases) are skipped.
func (s *ProgressService) LearnedWords(userID int64) ([]models.Word, error) {
	results, err := s.resultRepo.ListResults(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz results: %w", err)
	}

	ids := progress.LearnedWordIDs(results)
	words := make([]models.Word, 0, len(ids))
	for _, id := range ids {
		if word, ok := s.catalog.WordByID(id); ok {
			words = append(words, word)
		}
	}
	return words, nil
}
