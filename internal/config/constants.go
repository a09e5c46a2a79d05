package config

// DefaultDatabasePath is where the SQLite database lives unless overridden
// via DATABASE_PATH.
const DefaultDatabasePath = "./signsetu.db"
