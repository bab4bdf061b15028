package service

import (
	"context"
	"fmt"

	"Association_Portal/internal/model"
	"Association_Portal/internal/repository/database"
)

type AcademicService struct {
	repo *database.AcademicRepository
}

func NewAcademicService(repo *database.AcademicRepository) *AcademicService {
	return &AcademicService{repo: repo}
}

type AcademicInput struct {
	Level100     string `json:"level100"`
	Level200     string `json:"level200"`
	Level300     string `json:"level300"`
	Level400     string `json:"level400"`
	Postgraduate string `json:"postgraduate"`
}

// Get returns the academic links, every level defaulting to "".
func (s *AcademicService) Get(ctx context.Context) (*model.AcademicLinks, error) {
	links, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get academic links: %w", err)
	}
	return links, nil
}

func (s *AcademicService) Update(ctx context.Context, in AcademicInput) (*model.AcademicLinks, error) {
	links, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	mergeString(&links.Level100, in.Level100)
	mergeString(&links.Level200, in.Level200)
	mergeString(&links.Level300, in.Level300)
	mergeString(&links.Level400, in.Level400)
	mergeString(&links.Postgraduate, in.Postgraduate)
	if err := s.repo.Save(ctx, links); err != nil {
		return nil, fmt.Errorf("update academic links: %w", err)
	}
	return links, nil
}
