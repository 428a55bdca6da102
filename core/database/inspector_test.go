package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `transfer_records`").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("ID", "VARCHAR(36)", "NO", "PRI", nil, "").
			AddRow("Bytes", "BIGINT", "NO", "", "0", ""))

	columns, err := GetTableColumns(db, "transfer_records")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "varchar(36)", columns[0].Type)
	assert.Equal(t, "bigint", columns[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `transfer_records`").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type"}).
			AddRow("id", "varchar(36)").
			AddRow("bucket", "varchar(255)"))

	missing, err := MissingColumns(db, "transfer_records", []string{"id", "bucket", "object_key"})
	require.NoError(t, err)
	assert.Equal(t, []string{"object_key"}, missing)
}

func TestMissingColumns_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS").WillReturnError(assert.AnError)

	_, err := MissingColumns(db, "transfer_records", []string{"id"})
	assert.ErrorIs(t, err, assert.AnError)
}
