package models

import "database/sql"

// AppState carries the process-wide application context: the display name and
// the pooled database handle. It is constructed once in main and shared
// read-only by every handler; the pool manages its own concurrency.
type AppState struct {
	AppName string
	DB      *sql.DB
}
