package database

import (
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Connect picks the driver from the DSN: postgres URLs go to the postgres
// driver, anything else is treated as a SQLite path (":memory:" included).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Info().Msg("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Info().Str("path", dsn).Msg("using SQLite")

	// SQLite keeps foreign keys off unless asked; postgres always
	// enforces them, so turn them on to keep both configurations honest.
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn + sep + "_pragma=foreign_keys(1)",
		}),
		&gorm.Config{},
	)
}
