package schema

// Fixed table templates. The engine decides which templates to include; it
// never invents column names beyond these shapes.

func idColumn() DatabaseColumn {
	return DatabaseColumn{Name: "id", Type: TypeID, IsPrimaryKey: true}
}

func timestampColumn(name string) DatabaseColumn {
	return DatabaseColumn{Name: name, Type: TypeTimestamp, Default: "now()"}
}

func usersTable() DatabaseTable {
	return DatabaseTable{
		Name: "users",
		Columns: []DatabaseColumn{
			idColumn(),
			{Name: "email", Type: TypeString, Unique: true},
			{Name: "password_hash", Type: TypeString},
			{Name: "name", Type: TypeString},
			{Name: "avatar_url", Type: TypeString, Nullable: true},
			{Name: "is_active", Type: TypeBoolean, Default: "true"},
			timestampColumn("created_at"),
			timestampColumn("updated_at"),
		},
		Indexes: []DatabaseIndex{
			{Name: "idx_users_email", Columns: []string{"email"}, Unique: true},
		},
	}
}

func tasksTable() DatabaseTable {
	return DatabaseTable{
		Name: "tasks",
		Columns: []DatabaseColumn{
			idColumn(),
			{Name: "title", Type: TypeString},
			{Name: "description", Type: TypeText, Nullable: true},
			{Name: "status", Type: TypeString, Default: "'pending'"},
			{Name: "priority", Type: TypeString, Default: "'medium'"},
			{Name: "due_date", Type: TypeDate, Nullable: true},
			{Name: "creator_id", Type: TypeID},
			{Name: "assignee_id", Type: TypeID, Nullable: true},
			{Name: "parent_task_id", Type: TypeID, Nullable: true},
			{Name: "completed_at", Type: TypeTimestamp, Nullable: true},
			timestampColumn("created_at"),
			timestampColumn("updated_at"),
		},
		Indexes: []DatabaseIndex{
			{Name: "idx_tasks_creator_id", Columns: []string{"creator_id"}},
			{Name: "idx_tasks_assignee_id", Columns: []string{"assignee_id"}},
			{Name: "idx_tasks_status", Columns: []string{"status"}},
			{Name: "idx_tasks_due_date", Columns: []string{"due_date"}},
		},
		ForeignKeys: []DatabaseForeignKey{
			{Column: "creator_id", ReferencesTable: "users", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
			{Column: "assignee_id", ReferencesTable: "users", ReferencesColumn: "id", OnDelete: OnDeleteSetNull},
			{Column: "parent_task_id", ReferencesTable: "tasks", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
		},
	}
}

func taskSharesTable() DatabaseTable {
	return DatabaseTable{
		Name: "task_shares",
		Columns: []DatabaseColumn{
			idColumn(),
			{Name: "task_id", Type: TypeID},
			{Name: "user_id", Type: TypeID},
			{Name: "permission", Type: TypeString, Default: "'view'"},
			timestampColumn("created_at"),
		},
		Indexes: []DatabaseIndex{
			{Name: "idx_task_shares_task_user", Columns: []string{"task_id", "user_id"}, Unique: true},
			{Name: "idx_task_shares_user_id", Columns: []string{"user_id"}},
		},
		ForeignKeys: []DatabaseForeignKey{
			{Column: "task_id", ReferencesTable: "tasks", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
			{Column: "user_id", ReferencesTable: "users", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
		},
	}
}

func commentsTable() DatabaseTable {
	return DatabaseTable{
		Name: "comments",
		Columns: []DatabaseColumn{
			idColumn(),
			{Name: "task_id", Type: TypeID},
			{Name: "user_id", Type: TypeID},
			{Name: "parent_comment_id", Type: TypeID, Nullable: true},
			{Name: "content", Type: TypeText},
			{Name: "is_deleted", Type: TypeBoolean, Default: "false"},
			timestampColumn("created_at"),
			timestampColumn("updated_at"),
		},
		Indexes: []DatabaseIndex{
			{Name: "idx_comments_task_id", Columns: []string{"task_id"}},
			{Name: "idx_comments_user_id", Columns: []string{"user_id"}},
			{Name: "idx_comments_parent_id", Columns: []string{"parent_comment_id"}},
		},
		ForeignKeys: []DatabaseForeignKey{
			{Column: "task_id", ReferencesTable: "tasks", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
			{Column: "user_id", ReferencesTable: "users", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
			{Column: "parent_comment_id", ReferencesTable: "comments", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
		},
	}
}

func attachmentsTable() DatabaseTable {
	return DatabaseTable{
		Name: "attachments",
		Columns: []DatabaseColumn{
			idColumn(),
			{Name: "task_id", Type: TypeID},
			{Name: "uploader_id", Type: TypeID, Nullable: true},
			{Name: "filename", Type: TypeString},
			{Name: "storage_path", Type: TypeString},
			{Name: "mime_type", Type: TypeString},
			{Name: "size_bytes", Type: TypeBigInt},
			timestampColumn("created_at"),
		},
		Indexes: []DatabaseIndex{
			{Name: "idx_attachments_task_id", Columns: []string{"task_id"}},
		},
		ForeignKeys: []DatabaseForeignKey{
			{Column: "task_id", ReferencesTable: "tasks", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
			{Column: "uploader_id", ReferencesTable: "users", ReferencesColumn: "id", OnDelete: OnDeleteSetNull},
		},
	}
}

func notificationsTable() DatabaseTable {
	return DatabaseTable{
		Name: "notifications",
		Columns: []DatabaseColumn{
			idColumn(),
			{Name: "user_id", Type: TypeID},
			{Name: "type", Type: TypeString},
			{Name: "payload", Type: TypeJSON, Nullable: true},
			{Name: "is_read", Type: TypeBoolean, Default: "false"},
			{Name: "read_at", Type: TypeTimestamp, Nullable: true},
			timestampColumn("created_at"),
		},
		Indexes: []DatabaseIndex{
			{Name: "idx_notifications_user_unread", Columns: []string{"user_id", "is_read"}},
		},
		ForeignKeys: []DatabaseForeignKey{
			{Column: "user_id", ReferencesTable: "users", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
		},
	}
}

func teamsTable() DatabaseTable {
	return DatabaseTable{
		Name: "teams",
		Columns: []DatabaseColumn{
			idColumn(),
			{Name: "name", Type: TypeString},
			{Name: "owner_id", Type: TypeID},
			timestampColumn("created_at"),
		},
		Indexes: []DatabaseIndex{
			{Name: "idx_teams_owner_id", Columns: []string{"owner_id"}},
		},
		ForeignKeys: []DatabaseForeignKey{
			{Column: "owner_id", ReferencesTable: "users", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
		},
	}
}

func teamMembersTable() DatabaseTable {
	return DatabaseTable{
		Name: "team_members",
		Columns: []DatabaseColumn{
			idColumn(),
			{Name: "team_id", Type: TypeID},
			{Name: "user_id", Type: TypeID},
			{Name: "role", Type: TypeString, Default: "'member'"},
			timestampColumn("joined_at"),
		},
		Indexes: []DatabaseIndex{
			{Name: "idx_team_members_team_user", Columns: []string{"team_id", "user_id"}, Unique: true},
		},
		ForeignKeys: []DatabaseForeignKey{
			{Column: "team_id", ReferencesTable: "teams", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
			{Column: "user_id", ReferencesTable: "users", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
		},
	}
}

func categoriesTable() DatabaseTable {
	return DatabaseTable{
		Name: "categories",
		Columns: []DatabaseColumn{
			idColumn(),
			{Name: "name", Type: TypeString, Unique: true},
			{Name: "color", Type: TypeString, Nullable: true},
			timestampColumn("created_at"),
		},
		Indexes: []DatabaseIndex{
			{Name: "idx_categories_name", Columns: []string{"name"}, Unique: true},
		},
	}
}

func taskCategoriesTable() DatabaseTable {
	return DatabaseTable{
		Name: "task_categories",
		Columns: []DatabaseColumn{
			idColumn(),
			{Name: "task_id", Type: TypeID},
			{Name: "category_id", Type: TypeID},
		},
		Indexes: []DatabaseIndex{
			{Name: "idx_task_categories_task_category", Columns: []string{"task_id", "category_id"}, Unique: true},
		},
		ForeignKeys: []DatabaseForeignKey{
			{Column: "task_id", ReferencesTable: "tasks", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
			{Column: "category_id", ReferencesTable: "categories", ReferencesColumn: "id", OnDelete: OnDeleteCascade},
		},
	}
}

func auditLogsTable() DatabaseTable {
	return DatabaseTable{
		Name: "audit_logs",
		Columns: []DatabaseColumn{
			idColumn(),
			{Name: "user_id", Type: TypeID, Nullable: true},
			{Name: "entity_type", Type: TypeString},
			{Name: "entity_id", Type: TypeString},
			{Name: "action", Type: TypeString},
			{Name: "changes", Type: TypeJSON, Nullable: true},
			timestampColumn("created_at"),
		},
		Indexes: []DatabaseIndex{
			{Name: "idx_audit_logs_entity", Columns: []string{"entity_type", "entity_id"}},
			{Name: "idx_audit_logs_created_at", Columns: []string{"created_at"}},
		},
		ForeignKeys: []DatabaseForeignKey{
			{Column: "user_id", ReferencesTable: "users", ReferencesColumn: "id", OnDelete: OnDeleteSetNull},
		},
	}
}

// genericEntityTable is the shape used when no keyword family matches.
func genericEntityTable(name string) DatabaseTable {
	return DatabaseTable{
		Name: name,
		Columns: []DatabaseColumn{
			idColumn(),
			{Name: "name", Type: TypeString},
			{Name: "description", Type: TypeText, Nullable: true},
			timestampColumn("created_at"),
			timestampColumn("updated_at"),
		},
	}
}
