package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielsouza/lojavirtual-api/internal/application/usecase"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"
)

// Fakes de catálogo que contam quantas vezes o banco foi consultado.

type fakeStateRepo struct {
	states []*entity.State
	calls  int
}

func (f *fakeStateRepo) GetByID(id int64) (*entity.State, error) {
	for _, s := range f.states {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStateRepo) ListOrderedByName() ([]*entity.State, error) {
	f.calls++
	return f.states, nil
}

type fakeCityRepo struct {
	cities []*entity.City
	calls  int
}

func (f *fakeCityRepo) GetByID(id int64) (*entity.City, error) {
	for _, c := range f.cities {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCityRepo) ListByState(stateID int64) ([]*entity.City, error) {
	f.calls++
	var out []*entity.City
	for _, c := range f.cities {
		if c.StateID == stateID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestStateList_SegundaChamadaVemDoCache(t *testing.T) {
	states := &fakeStateRepo{states: []*entity.State{
		{ID: 1, Name: "Minas Gerais"},
		{ID: 2, Name: "São Paulo"},
	}}
	uc := usecase.NewStateUseCase(states, &fakeCityRepo{}, time.Minute)

	first, err := uc.List()
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, states.calls, "a segunda leitura não deve tocar o banco")
}

func TestCitiesByState_CachePorEstado(t *testing.T) {
	cities := &fakeCityRepo{cities: []*entity.City{
		{ID: 1, Name: "Uberlândia", StateID: 1},
		{ID: 2, Name: "Campinas", StateID: 2},
		{ID: 3, Name: "São Paulo", StateID: 2},
	}}
	uc := usecase.NewStateUseCase(&fakeStateRepo{}, cities, time.Minute)

	mg, err := uc.CitiesByState(1)
	require.NoError(t, err)
	require.Len(t, mg, 1)

	sp, err := uc.CitiesByState(2)
	require.NoError(t, err)
	require.Len(t, sp, 2)
	assert.Equal(t, 2, cities.calls, "cada estado tem a sua entrada de cache")

	_, err = uc.CitiesByState(1)
	require.NoError(t, err)
	assert.Equal(t, 2, cities.calls, "repetir um estado já consultado não toca o banco")
}
