package emit

import (
	"fmt"
	"reflect"
	"strings"

	"currency-registry/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the registry models to the live tables.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies the database tables using the GORM models as the source of truth.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
	}

	for _, model := range tableModels {
		val := reflect.TypeOf(model)
		tabler, ok := model.(interface{ TableName() string })
		if !ok {
			return nil, fmt.Errorf("model %s does not implement TableName", val.Name())
		}
		tableName := tabler.TableName()

		tblReport := TableReport{
			MissingColumns: []string{},
			TypeMismatches: []string{},
			Status:         "ok",
		}

		actualCols, err := database.GetTableColumns(db, tableName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		actualMap := make(map[string]database.ColumnInfo, len(actualCols))
		for _, col := range actualCols {
			actualMap[col.Field] = col
		}

		for i := 0; i < val.NumField(); i++ {
			gormTag := val.Field(i).Tag.Get("gorm")
			colName := gormTagValue(gormTag, "column")
			if colName == "" {
				continue
			}

			actCol, exists := actualMap[colName]
			if !exists {
				tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
				tblReport.Status = "error"
				report.Matched = false
				continue
			}

			// Only columns with an explicit type are type checked
			expType := strings.ToLower(gormTagValue(gormTag, "type"))
			if expType != "" && !strings.Contains(actCol.Type, expType) {
				tblReport.TypeMismatches = append(tblReport.TypeMismatches,
					fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type))
				tblReport.Status = "error"
				report.Matched = false
			}
		}

		report.Tables[tableName] = tblReport
	}

	return report, nil
}

func gormTagValue(tag, key string) string {
	prefix := key + ":"
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, prefix) {
			return strings.TrimPrefix(p, prefix)
		}
	}
	return ""
}
