package emit

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"currency-registry/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T, name string) *gorm.DB {
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Name:   fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err)
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestReplace_SQLite(t *testing.T) {
	db := setupSQLite(t, "emit_replace")
	require.NoError(t, Migrate(db))

	for i := 0; i < 2; i++ {
		counts, err := Replace(context.Background(), db, testRegistry())
		require.NoError(t, err)
		assert.Equal(t, TableCounts{Records: 5, Links: 4}, counts)
	}

	var records int64
	require.NoError(t, db.Model(&CurrencyRecord{}).Count(&records).Error)
	assert.Equal(t, int64(5), records)

	var links int64
	require.NoError(t, db.Model(&CurrencyCountry{}).Count(&links).Error)
	assert.Equal(t, int64(4), links)

	var xau CurrencyRecord
	require.NoError(t, db.First(&xau, "code = ?", "XAU").Error)
	assert.Equal(t, 959, xau.NumericCode)
	assert.Equal(t, -1, xau.MinorUnit)
	assert.Equal(t, "currency", xau.Category)

	var eur []CurrencyCountry
	require.NoError(t, db.Where("code = ?", "EUR").Order("country").Find(&eur).Error)
	assert.Equal(t, []CurrencyCountry{
		{Code: "EUR", Country: "AUT", CountryNumeric: "040"},
		{Code: "EUR", Country: "FIN", CountryNumeric: "246"},
	}, eur)
}

func TestReplace_MySQL(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `currency_countries`")).WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `currency_records`")).WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `currency_records`")).WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `currency_countries`")).WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectCommit()

		counts, err := Replace(context.Background(), db, testRegistry())
		require.NoError(t, err)
		assert.Equal(t, 5, counts.Records)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert failure rolls back", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `currency_countries`")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `currency_records`")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `currency_records`")).WillReturnError(errors.New("duplicate entry"))
		mock.ExpectRollback()

		_, err := Replace(context.Background(), db, testRegistry())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert currency_records")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCheckSchema(t *testing.T) {
	t.Run("Nil DB", func(t *testing.T) {
		report, err := CheckSchema(nil)
		assert.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("Migrated tables match", func(t *testing.T) {
		db := setupSQLite(t, "emit_schema_ok")
		require.NoError(t, Migrate(db))

		report, err := CheckSchema(db)
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.Equal(t, "sqlite", report.Driver)
		assert.Equal(t, "ok", report.Tables["currency_records"].Status)
		assert.Equal(t, "ok", report.Tables["currency_countries"].Status)
	})

	t.Run("Missing and mismatched columns", func(t *testing.T) {
		db := setupSQLite(t, "emit_schema_bad")
		require.NoError(t, db.Exec("CREATE TABLE currency_records (code VARCHAR(3), name INTEGER)").Error)

		report, err := CheckSchema(db)
		require.NoError(t, err)
		assert.False(t, report.Matched)

		records := report.Tables["currency_records"]
		assert.Equal(t, "error", records.Status)
		assert.Equal(t, []string{"numeric_code", "minor_unit", "category"}, records.MissingColumns)
		assert.Equal(t, []string{"name: expected varchar(255), got integer"}, records.TypeMismatches)

		countries := report.Tables["currency_countries"]
		assert.Equal(t, []string{"code", "country", "country_numeric"}, countries.MissingColumns)
	})

	t.Run("MySQL columns", func(t *testing.T) {
		db, mock := setupMockDB(t)

		records := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("code", "varchar(3)", "NO", "PRI", nil, "").
			AddRow("name", "varchar(255)", "NO", "", nil, "").
			AddRow("numeric_code", "bigint", "NO", "", nil, "").
			AddRow("minor_unit", "bigint", "NO", "", nil, "").
			AddRow("category", "varchar(16)", "NO", "MUL", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `currency_records`").WillReturnRows(records)

		countries := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("code", "varchar(3)", "NO", "PRI", nil, "").
			AddRow("country", "varchar(3)", "NO", "PRI", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `currency_countries`").WillReturnRows(countries)

		report, err := CheckSchema(db)
		require.NoError(t, err)
		assert.Equal(t, "mysql", report.Driver)
		assert.False(t, report.Matched)
		assert.Equal(t, "ok", report.Tables["currency_records"].Status)
		assert.Equal(t, []string{"country_numeric"}, report.Tables["currency_countries"].MissingColumns)
	})
}
