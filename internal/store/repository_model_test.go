package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/models"
)

func newTestModelRepo(t *testing.T) (*modelRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	l := logger.Nop()
	repo := &modelRepository{
		db:     newPostgresDB(db, l),
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func associatedModels() (user, client, endpoint *models.Model) {
	user = &models.Model{
		Identity:  "user",
		TableName: "users",
		Attributes: models.Attributes{
			{Name: "name"},
			{Name: "clients", Collection: "client", Via: "user"},
			{Name: "endpoints", Collection: "endpoint", Via: "users"},
		},
		Associations: []models.Association{
			{Alias: "clients", Type: models.AssociationCollection, Collection: "client", Via: "user"},
			{Alias: "endpoints", Type: models.AssociationCollection, Collection: "endpoint", Via: "users", Through: "endpoint_users"},
			{Alias: "company", Type: models.AssociationModel, Model: "company"},
		},
	}
	client = &models.Model{
		Identity:   "client",
		TableName:  "clients",
		Attributes: models.Attributes{{Name: "user", Model: "user", ColumnName: "user_id"}},
	}
	endpoint = &models.Model{
		Identity:   "endpoint",
		TableName:  "endpoints",
		Attributes: models.Attributes{{Name: "users", Collection: "user", Via: "endpoints"}},
	}
	return user, client, endpoint
}

func TestCount_NoCriteria(t *testing.T) {
	repo, mock, db := newTestModelRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT(*) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42000)))

	user, _, _ := associatedModels()
	n, err := repo.Count(context.Background(), user, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(42000), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_WithCriteria(t *testing.T) {
	repo, mock, db := newTestModelRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT(*) FROM "users" WHERE ("name" = $1)`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	user, _, _ := associatedModels()
	n, err := repo.Count(context.Background(), user, models.Criteria{{Attribute: "name", Operator: models.OpEq, Value: "alice"}})

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_UnknownColumn(t *testing.T) {
	repo, _, db := newTestModelRepo(t)
	defer db.Close()

	user, _, _ := associatedModels()
	_, err := repo.Count(context.Background(), user, models.Criteria{{Attribute: "nickname", Operator: models.OpEq, Value: "x"}})

	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestCount_DriverErrors(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantTransient bool
	}{
		{name: "deadlock is transient", err: pgError(pgerrcode.DeadlockDetected), wantTransient: true},
		{name: "connection failure is transient", err: pgError(pgerrcode.ConnectionFailure), wantTransient: true},
		{name: "undefined table is permanent", err: pgError(pgerrcode.UndefinedTable), wantTransient: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestModelRepo(t)
			defer db.Close()

			mock.ExpectQuery(`SELECT COUNT(*) FROM "users"`).WillReturnError(tt.err)

			user, _, _ := associatedModels()
			_, err := repo.Count(context.Background(), user, nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrExecutingQuery)
			assert.Equal(t, tt.wantTransient, errors.Is(err, ErrTransient))
		})
	}
}

func TestCountAssociation_OneToMany(t *testing.T) {
	repo, mock, db := newTestModelRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT "id" FROM "users" WHERE ("id" = $1) LIMIT 1`).
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery(`SELECT COUNT(*) FROM "clients" WHERE "user_id" = $1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	user, client, _ := associatedModels()
	n, err := repo.CountAssociation(context.Background(), user,
		models.Criteria{{Attribute: "id", Operator: models.OpEq, Value: "7"}}, "clients", client)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountAssociation_ManyToMany(t *testing.T) {
	repo, mock, db := newTestModelRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT "id" FROM "users" WHERE ("id" = $1) LIMIT 1`).
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery(`SELECT COUNT(*) FROM "endpoint_users" WHERE "user_id" = $1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	user, _, endpoint := associatedModels()
	n, err := repo.CountAssociation(context.Background(), user,
		models.Criteria{{Attribute: "id", Operator: models.OpEq, Value: "7"}}, "endpoints", endpoint)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountAssociation_RecordNotFound(t *testing.T) {
	repo, mock, db := newTestModelRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT "id" FROM "users" WHERE ("id" = $1) LIMIT 1`).
		WithArgs("404").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, client, _ := associatedModels()
	_, err := repo.CountAssociation(context.Background(), user,
		models.Criteria{{Attribute: "id", Operator: models.OpEq, Value: "404"}}, "clients", client)

	assert.ErrorIs(t, err, ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountAssociation_NotACollection(t *testing.T) {
	repo, _, db := newTestModelRepo(t)
	defer db.Close()

	user, client, _ := associatedModels()

	_, err := repo.CountAssociation(context.Background(), user, nil, "company", client)
	assert.ErrorIs(t, err, ErrInvalidAssociation)

	_, err = repo.CountAssociation(context.Background(), user, nil, "missing", client)
	assert.ErrorIs(t, err, ErrInvalidAssociation)
}

func TestCountAssociation_MissingBackReference(t *testing.T) {
	repo, mock, db := newTestModelRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT "id" FROM "users" LIMIT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	user, _, _ := associatedModels()
	orphan := &models.Model{Identity: "client", TableName: "clients"}

	_, err := repo.CountAssociation(context.Background(), user, nil, "clients", orphan)

	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(sql.ErrNoRows))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.TooManyConnections)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
