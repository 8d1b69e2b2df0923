package usecase

import (
	"fmt"
	"time"

	"github.com/gabrielsouza/lojavirtual-api/internal/application/dto"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/repository"
	gocache "github.com/patrickmn/go-cache"
)

// StateUseCase leituras do catálogo de estados e cidades. Os dados são de
// referência e mudam raramente, então as respostas ficam em um cache TTL
// em memória; a expiração garante que alterações no banco apareçam sem
// reiniciar o serviço.
type StateUseCase struct {
	stateRepo repository.StateRepository
	cityRepo  repository.CityRepository
	cache     *gocache.Cache
}

// NewStateUseCase constrói o caso de uso com o TTL do cache.
func NewStateUseCase(stateRepo repository.StateRepository, cityRepo repository.CityRepository, ttl time.Duration) *StateUseCase {
	return &StateUseCase{
		stateRepo: stateRepo,
		cityRepo:  cityRepo,
		cache:     gocache.New(ttl, time.Minute),
	}
}

// List retorna todos os estados ordenados por nome.
func (uc *StateUseCase) List() ([]dto.StateResponse, error) {
	if v, ok := uc.cache.Get("states"); ok {
		return v.([]dto.StateResponse), nil
	}
	list, err := uc.stateRepo.ListOrderedByName()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StateResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.StateResponse{ID: s.ID, Name: s.Name})
	}
	uc.cache.SetDefault("states", out)
	return out, nil
}

// CitiesByState retorna as cidades do estado ordenadas por nome.
func (uc *StateUseCase) CitiesByState(stateID int64) ([]dto.CityResponse, error) {
	key := fmt.Sprintf("cities:%d", stateID)
	if v, ok := uc.cache.Get(key); ok {
		return v.([]dto.CityResponse), nil
	}
	list, err := uc.cityRepo.ListByState(stateID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CityResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCityResponse(c))
	}
	uc.cache.SetDefault(key, out)
	return out, nil
}

func toCityResponse(c *entity.City) dto.CityResponse {
	return dto.CityResponse{ID: c.ID, Name: c.Name, StateID: c.StateID}
}
