package repository_test

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"taskboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestKVRepository_Load_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewKVRepository(gormDB)

	blob := `[{"id":"1","title":"Write docs","status":"To Do","priority":"Low"}]`
	mock.ExpectQuery(`SELECT \* FROM "kv_entries" WHERE key = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("tasks", blob, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))

	// Act
	data, found, err := repo.Load(context.Background(), "tasks")

	// Assert
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, blob, string(data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Load_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewKVRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "kv_entries" WHERE key = \$1 LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

	// Act
	data, found, err := repo.Load(context.Background(), "tasks")

	// Assert
	assert.NoError(t, err) // отсутствие записи не ошибка
	assert.False(t, found)
	assert.Nil(t, data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Load_NotFoundIsNotLogged(t *testing.T) {
	// Arrange
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var out bytes.Buffer
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.New(log.New(&out, "", 0), logger.Config{LogLevel: logger.Error}),
	})
	require.NoError(t, err)
	repo := repository.NewKVRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "kv_entries" WHERE key = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

	// Act
	_, found, err := repo.Load(context.Background(), "tasks")

	// Assert
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, out.String())
}

func TestKVRepository_Load_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewKVRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "kv_entries" WHERE key = \$1`).
		WillReturnError(assert.AnError)

	// Act
	_, found, err := repo.Load(context.Background(), "tasks")

	// Assert
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Save_Upserts(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewKVRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "kv_entries" .* ON CONFLICT \("key"\) DO UPDATE`).
		WithArgs("tasks", "[]", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.Save(context.Background(), "tasks", []byte("[]"))

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_EmptyKey(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewKVRepository(gormDB)

	_, _, err := repo.Load(context.Background(), "")
	assert.ErrorIs(t, err, repository.ErrEmptyKey)

	err = repo.Save(context.Background(), "", []byte("[]"))
	assert.ErrorIs(t, err, repository.ErrEmptyKey)

	assert.NoError(t, mock.ExpectationsWereMet())
}
