package service

import (
	"context"

	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/repo"
)

type Population struct {
	PopulationRepo *repo.Population
}

func NewPopulation(populationRepo *repo.Population) *Population {
	return &Population{
		PopulationRepo: populationRepo,
	}
}

func (s *Population) GetPyramid(ctx context.Context, geoKey string) ([]*model.PopulationRow, error) {
	return s.PopulationRepo.GetRowsByGeoKey(ctx, geoKey)
}
