package scheduling

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/catalog"
)

type fakeCatalog struct {
	services map[int64]*domain.Service
	masters  map[int64]*domain.Master
	err      error
}

func (f *fakeCatalog) GetServicesByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Service
	for _, id := range ids {
		if s, ok := f.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCatalog) GetMasterByID(_ context.Context, id int64) (*domain.Master, error) {
	m, ok := f.masters[id]
	if !ok {
		return nil, catalogRepo.ErrMasterNotFound
	}
	return m, nil
}

func (f *fakeCatalog) ListQualifiedMasters(_ context.Context, serviceIDs []int64) ([]*domain.Master, error) {
	var out []*domain.Master
	for _, m := range f.masters {
		if m.IsSchedulable() && m.CanPerform(serviceIDs) {
			out = append(out, m)
		}
	}
	return out, nil
}

func newResolver() (*Resolver, *fakeCatalog) {
	inactive := master(3, 1)
	inactive.IsActive = false
	c := &fakeCatalog{
		services: map[int64]*domain.Service{1: service(1, 30), 2: service(2, 60)},
		masters:  map[int64]*domain.Master{1: master(1, 1, 2), 2: master(2, 1), 3: inactive},
	}
	return NewResolver(c), c
}

func TestResolver_Services(t *testing.T) {
	r, c := newResolver()

	set, err := r.Services(context.Background(), []int64{2, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 90, set.TotalDurationMinutes())
	assert.Len(t, set, 2)

	_, err = r.Services(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInputFormat)

	_, err = r.Services(context.Background(), []int64{1, 9})
	assert.ErrorIs(t, err, ErrNotFound)

	c.err = errors.New("connection refused")
	_, err = r.Services(context.Background(), []int64{1})
	assert.ErrorIs(t, err, ErrStore)
}

func TestResolver_Master(t *testing.T) {
	r, _ := newResolver()
	both := domain.ServiceSet{service(1, 30), service(2, 60)}

	m, err := r.Master(context.Background(), 1, both)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.ID)

	_, err = r.Master(context.Background(), 2, both)
	assert.ErrorIs(t, err, ErrQualification)

	_, err = r.Master(context.Background(), 3, domain.ServiceSet{service(1, 30)})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Master(context.Background(), 42, both)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolver_QualifiedMasters(t *testing.T) {
	r, _ := newResolver()

	masters, err := r.QualifiedMasters(context.Background(), domain.ServiceSet{service(1, 30), service(2, 60)})

	require.NoError(t, err)
	require.Len(t, masters, 1)
	assert.Equal(t, int64(1), masters[0].ID)
}
