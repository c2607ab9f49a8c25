package schema

// ColumnType is the semantic type of a column, mapped to a concrete SQL type
// per dialect at emission time.
type ColumnType string

const (
	// TypeID is a surrogate identifier. Primary keys and foreign key columns
	// share this type so references always line up.
	TypeID        ColumnType = "id"
	TypeString    ColumnType = "string"
	TypeText      ColumnType = "text"
	TypeInteger   ColumnType = "integer"
	TypeBigInt    ColumnType = "bigint"
	TypeBoolean   ColumnType = "boolean"
	TypeTimestamp ColumnType = "timestamp"
	TypeDate      ColumnType = "date"
	TypeJSON      ColumnType = "json"
	TypeDecimal   ColumnType = "decimal"
)

// ReferentialAction is the ON DELETE policy of a foreign key.
type ReferentialAction string

const (
	OnDeleteCascade  ReferentialAction = "CASCADE"
	OnDeleteSetNull  ReferentialAction = "SET NULL"
	OnDeleteRestrict ReferentialAction = "RESTRICT"
)

// DatabaseColumn describes one column of an inferred table.
type DatabaseColumn struct {
	Name         string     `json:"name"`
	Type         ColumnType `json:"type"`
	Nullable     bool       `json:"nullable"`
	Unique       bool       `json:"unique"`
	Default      string     `json:"default,omitempty"`
	IsPrimaryKey bool       `json:"is_primary_key"`
}

// DatabaseIndex describes an index on columns of its own table.
type DatabaseIndex struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Unique  bool     `json:"unique"`
}

// DatabaseForeignKey describes a reference to another table in the same
// generation batch.
type DatabaseForeignKey struct {
	Column           string            `json:"column"`
	ReferencesTable  string            `json:"references_table"`
	ReferencesColumn string            `json:"references_column"`
	OnDelete         ReferentialAction `json:"on_delete"`
}

// DatabaseTable is one inferred relational table. Every table has exactly one
// primary-key column, typed TypeID.
type DatabaseTable struct {
	Name        string               `json:"name"`
	Columns     []DatabaseColumn     `json:"columns"`
	Indexes     []DatabaseIndex      `json:"indexes,omitempty"`
	ForeignKeys []DatabaseForeignKey `json:"foreign_keys,omitempty"`
}

// Dialect selects the SQL type mapping used at emission.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)
