package schema

import (
	"fmt"
	"strings"
)

// EmitSQL renders the table set as a single transactional script. All CREATE
// TABLE statements are emitted before any CREATE INDEX statement so an index
// never precedes the table it covers.
func EmitSQL(tables []DatabaseTable, dialect Dialect) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("-- Dialect: %s\n", dialect))
	sb.WriteString("-- Schema generated from task analysis. Review before applying.\n\n")

	if dialect == DialectPostgres {
		sb.WriteString("CREATE EXTENSION IF NOT EXISTS pgcrypto;\n\n")
	}

	sb.WriteString("BEGIN;\n\n")

	for _, tbl := range tables {
		writeCreateTable(&sb, tbl, dialect)
		sb.WriteString("\n")
	}

	for _, tbl := range tables {
		for _, idx := range tbl.Indexes {
			writeCreateIndex(&sb, tbl.Name, idx)
		}
	}

	sb.WriteString("\nCOMMIT;\n")
	return sb.String()
}

func writeCreateTable(sb *strings.Builder, tbl DatabaseTable, dialect Dialect) {
	sb.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n", tbl.Name))

	lines := make([]string, 0, len(tbl.Columns)+len(tbl.ForeignKeys))
	for _, col := range tbl.Columns {
		lines = append(lines, "    "+columnDDL(col, dialect))
	}
	for _, fk := range tbl.ForeignKeys {
		lines = append(lines, fmt.Sprintf(
			"    CONSTRAINT fk_%s_%s FOREIGN KEY (%s) REFERENCES %s(%s) ON DELETE %s",
			tbl.Name, fk.Column, fk.Column, fk.ReferencesTable, fk.ReferencesColumn, fk.OnDelete))
	}

	sb.WriteString(strings.Join(lines, ",\n"))
	sb.WriteString("\n);\n")
}

func writeCreateIndex(sb *strings.Builder, table string, idx DatabaseIndex) {
	unique := ""
	if idx.Unique {
		unique = "UNIQUE "
	}
	sb.WriteString(fmt.Sprintf("CREATE %sINDEX IF NOT EXISTS %s ON %s (%s);\n",
		unique, idx.Name, table, strings.Join(idx.Columns, ", ")))
}

func columnDDL(col DatabaseColumn, dialect Dialect) string {
	var sb strings.Builder
	sb.WriteString(col.Name)
	sb.WriteString(" ")
	sb.WriteString(sqlType(col, dialect))

	if col.IsPrimaryKey {
		sb.WriteString(" PRIMARY KEY")
		if col.Type == TypeID && dialect == DialectPostgres {
			sb.WriteString(" DEFAULT gen_random_uuid()")
		}
		return sb.String()
	}

	if !col.Nullable {
		sb.WriteString(" NOT NULL")
	}
	if col.Unique {
		sb.WriteString(" UNIQUE")
	}
	if col.Default != "" {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(defaultExpr(col.Default, dialect))
	}
	return sb.String()
}

func sqlType(col DatabaseColumn, dialect Dialect) string {
	switch dialect {
	case DialectSQLite:
		return sqliteType(col.Type)
	default:
		return postgresType(col.Type)
	}
}

func postgresType(t ColumnType) string {
	switch t {
	case TypeID:
		return "UUID"
	case TypeString:
		return "VARCHAR(255)"
	case TypeText:
		return "TEXT"
	case TypeInteger:
		return "INTEGER"
	case TypeBigInt:
		return "BIGINT"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeTimestamp:
		return "TIMESTAMPTZ"
	case TypeDate:
		return "DATE"
	case TypeJSON:
		return "JSONB"
	case TypeDecimal:
		return "NUMERIC(12,2)"
	default:
		return "TEXT"
	}
}

func sqliteType(t ColumnType) string {
	switch t {
	case TypeID, TypeString, TypeText, TypeDate:
		return "TEXT"
	case TypeInteger, TypeBigInt, TypeBoolean:
		return "INTEGER"
	case TypeTimestamp:
		return "TIMESTAMP"
	case TypeJSON:
		return "TEXT"
	case TypeDecimal:
		return "REAL"
	default:
		return "TEXT"
	}
}

func defaultExpr(def string, dialect Dialect) string {
	if def == "now()" {
		if dialect == DialectSQLite {
			return "CURRENT_TIMESTAMP"
		}
		return "now()"
	}
	return def
}
