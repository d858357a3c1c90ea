package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo is one live column as reported by SHOW COLUMNS (mysql) or
// PRAGMA table_info (sqlite). Field and Type are lowercased.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

type sqliteColumn struct {
	Cid        int
	Name       string
	Type       string
	Notnull    int
	DefaultVal *string `gorm:"column:dflt_value"`
	Pk         int
}

// GetTableColumns lists the columns of tableName in declaration order.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	if db.Dialector.Name() == DriverSQLite {
		var rows []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, row := range rows {
			col := ColumnInfo{Field: row.Name, Type: row.Type, Default: row.DefaultVal}
			if row.Pk > 0 {
				col.Key = "PRI"
			}
			if row.Notnull == 0 {
				col.Null = "YES"
			} else {
				col.Null = "NO"
			}
			columns = append(columns, col)
		}
	} else if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	for i := range columns {
		columns[i].Field = strings.ToLower(columns[i].Field)
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}
