package driver

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"
)

// ConnectDB opens the MySQL pool for the given DSN and verifies the
// connection. The handle is created once at startup and shared read-only by
// every handler; a connection failure is fatal because nothing works
// without the database.
func ConnectDB(databaseURL string) *sql.DB {
	db, err := sql.Open("mysql", databaseURL)
	if err != nil {
		log.Fatal("Error opening the database connection: ", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatal("Could not connect to the database: ", err)
	}
	return db
}
