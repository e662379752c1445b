package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure-Go SQLite driver, registers "sqlite"
)

// SQLiteDB là wrapper quản lý database connection và lifecycle
// Sử dụng struct giúp encapsulate logic và dễ dàng extend thêm methods
type SQLiteDB struct {
	DB   *sql.DB
	Path string
}

// NewSQLiteDB tạo instance mới của SQLiteDB
// Constructor pattern giúp initialize object với validation
func NewSQLiteDB(path string) *SQLiteDB {
	return &SQLiteDB{
		Path: path,
		DB:   nil, // DB sẽ được set khi Connect() được gọi
	}
}

// Connect là entry point chính để establish database connection
// Flow: mkdir data dir -> open -> pragmas -> schema
func (db *SQLiteDB) Connect(ctx context.Context) error {
	log.Println("[DATABASE] Initializing SQLite connection...")

	// Bước 1: Đảm bảo data directory tồn tại
	if dir := filepath.Dir(db.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// Bước 2: Open database file (tạo mới nếu chưa có)
	conn, err := sql.Open("sqlite", db.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Bước 3: Tune pragmas
	// WAL: writers không block readers, concurrent writes queue phía sau
	// busy_timeout: writer chờ thay vì trả SQLITE_BUSY ngay lập tức
	if _, err := conn.ExecContext(ctx, `
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA foreign_keys=ON;
	`); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set pragmas: %w", err)
	}

	// SQLite chỉ cho 1 writer tại 1 thời điểm, pool lớn không có ý nghĩa
	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(4)

	db.DB = conn

	// Bước 4: Ensure schema
	if err := db.ensureSchema(ctx); err != nil {
		conn.Close()
		db.DB = nil
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	log.Println("[DATABASE] SQLite connection established successfully")
	return nil
}

// HealthCheck verify database connectivity và availability
// Function này được call bởi health check endpoint
func (db *SQLiteDB) HealthCheck(ctx context.Context) error {
	if db.DB == nil {
		return fmt.Errorf("database is not initialized")
	}

	if err := db.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close closes the underlying database handle.
func (db *SQLiteDB) Close() error {
	if db.DB == nil {
		return nil
	}
	return db.DB.Close()
}

// ensureSchema tạo đủ 6 content tables + social_links + admin credential table
// CREATE TABLE IF NOT EXISTS nên gọi lại nhiều lần vẫn an toàn
func (db *SQLiteDB) ensureSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		tagline TEXT,
		bio TEXT,
		email TEXT,
		phone TEXT,
		location TEXT,
		quote TEXT,
		quote_author TEXT,
		photo_url TEXT,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS skills (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		percentage INTEGER NOT NULL DEFAULT 80,
		sort_order INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS services (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		icon TEXT,
		title TEXT NOT NULL,
		description TEXT,
		sort_order INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS experiences (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year_range TEXT,
		title TEXT NOT NULL,
		company TEXT,
		description TEXT,
		type TEXT DEFAULT 'experience',
		sort_order INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS portfolio (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		image_url TEXT,
		category TEXT,
		link TEXT,
		sort_order INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS blogs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		excerpt TEXT,
		content TEXT,
		cover_url TEXT,
		published INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS social_links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		platform TEXT NOT NULL,
		url TEXT NOT NULL,
		icon TEXT
	);

	CREATE TABLE IF NOT EXISTS admin (
		id INTEGER PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	);
	`

	_, err := db.DB.ExecContext(ctx, schema)
	return err
}
