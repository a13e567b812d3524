package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// slowQueryThreshold is the duration above which GORM logs a query as slow.
const slowQueryThreshold = 200 * time.Millisecond

// slogGormWriter adapts GORM's logger writer to slog.
type slogGormWriter struct {
	logger *slog.Logger
}

// Printf implements gormlogger.Writer.
func (w *slogGormWriter) Printf(format string, args ...interface{}) {
	w.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// fileDSNParams are the go-sqlite3 connection parameters applied to file
// databases. Writers wait on a locked database instead of failing, and
// transactions take the write lock on BEGIN so a read-then-write never has
// to upgrade its lock.
var fileDSNParams = []struct{ key, value string }{
	{"_busy_timeout", "5000"},
	{"_txlock", "immediate"},
	{"_journal_mode", "WAL"},
}

// IsMemory reports whether dsn names an in-memory database.
func IsMemory(dsn string) bool {
	return dsn == MemoryDSN || strings.Contains(dsn, "mode=memory")
}

// FileDSN appends the busy timeout, immediate transaction locking and WAL
// journal parameters to a file DSN. Parameters already present in dsn are
// kept. In-memory DSNs are returned unchanged.
func FileDSN(dsn string) string {
	if IsMemory(dsn) {
		return dsn
	}

	var params []string
	for _, p := range fileDSNParams {
		if !strings.Contains(dsn, p.key+"=") {
			params = append(params, p.key+"="+p.value)
		}
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// Open connects to the SQLite database at dsn. An in-memory database lives
// only as long as its connection, so the pool is pinned to one connection
// that is never recycled. File databases are opened through FileDSN.
func Open(dsn string, logger *slog.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dsn = FileDSN(dsn)

	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			&slogGormWriter{logger: logger.With(slog.String("component", "gorm"))},
			gormlogger.Config{
				SlowThreshold:             slowQueryThreshold,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if IsMemory(dsn) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sqlite connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	return db, nil
}

// Migrate creates or updates the tasks table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&taskRecord{}); err != nil {
		return fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}
	return nil
}
