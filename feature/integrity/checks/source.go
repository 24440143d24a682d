package checks

import (
	"fmt"
	"reflect"
	"strings"

	"country-info/core/database"
	"country-info/feature/countryinfo/models"

	"gorm.io/gorm"
)

// SourceReport strictly types the result of a source schema check.
type SourceReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	Exists         bool     `json:"exists"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSource verifies the geonames tables using the GORM row models as the source of truth.
func CheckSource(db *gorm.DB) (*SourceReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SourceReport{
		Driver:  db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Matched: true,
		Errors:  []string{},
	}

	for _, model := range models.SourceModels() {
		typ := reflect.Indirect(reflect.ValueOf(model)).Type()
		tabler, ok := model.(interface{ TableName() string })
		if !ok {
			return nil, fmt.Errorf("model %s does not implement TableName", typ.Name())
		}
		tableName := tabler.TableName()

		actualCols, err := database.GetTableColumns(db, tableName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		tblReport := checkColumns(typ, actualCols)
		if tblReport.Status != "ok" {
			report.Matched = false
		}
		report.Tables[tableName] = tblReport
	}

	return report, nil
}

// checkColumns compares the gorm column tags of a model with the inspected columns.
// An absent table inspects as zero columns.
func checkColumns(typ reflect.Type, actualCols []database.ColumnInfo) TableReport {
	tblReport := TableReport{
		Exists:         len(actualCols) > 0,
		MissingColumns: []string{},
		Status:         "ok",
	}

	actual := make(map[string]struct{}, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = struct{}{}
	}

	for i := 0; i < typ.NumField(); i++ {
		colName := parseGormColumn(typ.Field(i).Tag.Get("gorm"))
		if colName == "" {
			continue
		}
		// Imports differ in case (GMT_offset vs gmt_offset)
		if _, ok := actual[strings.ToLower(colName)]; !ok {
			tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
			tblReport.Status = "error"
		}
	}
	return tblReport
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	parts := strings.Split(tag, ";")
	for _, p := range parts {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}
