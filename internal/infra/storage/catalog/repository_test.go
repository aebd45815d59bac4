package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

var masterRowColumns = []string{"id", "first_name", "last_name", "is_active", "is_employee", "service_ids"}

func TestGetServicesByIDs(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM services s LEFT JOIN service_parents sp ON sp.service_id = s.id WHERE s.id IN \(\$1,\$2\) GROUP BY s.id ORDER BY s.id ASC`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_minutes", "price", "is_long", "parent_ids"}).
			AddRow(int64(1), "Стрижка", 30, 500.0, false, "{}").
			AddRow(int64(2), "Наращивание", 240, 3000.0, true, "{1}"))

	services, err := repo.GetServicesByIDs(context.Background(), []int64{1, 2})

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Empty(t, services[0].ParentIDs)
	assert.True(t, services[1].IsLong)
	assert.Equal(t, []int64{1}, services[1].ParentIDs)
}

func TestGetMasterByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`FROM masters m LEFT JOIN master_services`).WithArgs(int64(9)).WillReturnRows(sqlmock.NewRows(masterRowColumns))

	_, err := repo.GetMasterByID(context.Background(), 9)

	assert.ErrorIs(t, err, ErrMasterNotFound)
}

func TestListQualifiedMasters(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM masters m JOIN master_services ms ON ms.master_id = m.id WHERE m.is_active = \$1 AND m.is_employee = \$2 GROUP BY m.id HAVING COUNT\(\*\) FILTER \(WHERE ms.service_id = ANY\(\$3\)\) = \$4 ORDER BY m.id ASC`).
		WithArgs(true, true, "{1,2}", 2).
		WillReturnRows(sqlmock.NewRows(masterRowColumns).
			AddRow(int64(1), "Айгерим", "Садыкова", true, true, "{1,2,3}"))

	masters, err := repo.ListQualifiedMasters(context.Background(), []int64{2, 1, 2})

	require.NoError(t, err)
	require.Len(t, masters, 1)
	assert.Equal(t, "Айгерим Садыкова", masters[0].FullName())
	assert.Equal(t, []int64{1, 2, 3}, masters[0].ServiceIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadServiceGraph_AndReplaceParents(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT service_id, parent_id FROM service_parents`).
		WillReturnRows(sqlmock.NewRows([]string{"service_id", "parent_id"}).
			AddRow(int64(2), int64(1)).
			AddRow(int64(3), int64(2)))

	g, err := repo.LoadServiceGraph(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, g.Parents(2))
	assert.True(t, g.WouldCycle(1, []int64{3}))

	mock.ExpectExec(`DELETE FROM service_parents WHERE service_id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO service_parents \(service_id,parent_id\) VALUES \(\$1,\$2\),\(\$3,\$4\)`).
		WithArgs(int64(4), int64(1), int64(4), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.ReplaceParents(context.Background(), 4, []int64{3, 1}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
