// internals/features/registrations/store/store.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

// Registration: satu entri pendaftaran. Tidak pernah dimutasi setelah dibuat.
type Registration struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Number    string `json:"number"`
	Timestamp string `json:"timestamp"`
}

var (
	// ErrEmailTaken: email sudah dipakai pendaftar lain
	ErrEmailTaken = errors.New("email sudah terdaftar")
	// ErrNumberTaken: nomor HP sudah dipakai pendaftar lain
	ErrNumberTaken = errors.New("nomor sudah terdaftar")
)

// UniqueCheck: hasil dua lookup independen (keduanya selalu dievaluasi)
type UniqueCheck struct {
	EmailTaken  bool
	NumberTaken bool
}

/* =========================================================
   STORE
   Embedded store lokal untuk entri pendaftaran dengan dua
   index unik (email, number). Constraint di engine yang jadi
   penentu akhir; CheckUnique hanya hint optimistik untuk UI.
   ========================================================= */

type Store struct {
	sqlDB *sql.DB
}

// Open membuka (atau membuat) store beserta skemanya. Idempoten:
// aman dipanggil berulang pada file yang sama.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("path store pendaftaran wajib diisi")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("buka store pendaftaran: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping store pendaftaran: %w", err)
	}

	s := &Store{sqlDB: sqlDB}
	if err := s.createSchema(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("siapkan skema store pendaftaran: %w", err)
	}
	return s, nil
}

func (s *Store) createSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS registrations (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			name      TEXT NOT NULL,
			email     TEXT NOT NULL,
			number    TEXT NOT NULL,
			timestamp TEXT NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_registrations_email ON registrations (email)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_registrations_number ON registrations (number)`,
	}
	for _, stmt := range stmts {
		if _, err := s.sqlDB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close melepas koneksi sqlite
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CheckUnique menjalankan dua point lookup secara paralel dan menunggu
// KEDUANYA selesai — duplikat nomor tetap terlapor walau lookup email
// selesai lebih dulu, dan sebaliknya.
func (s *Store) CheckUnique(ctx context.Context, email, number string) (UniqueCheck, error) {
	var check UniqueCheck

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		taken, err := s.exists(gctx, "email", email)
		if err != nil {
			return err
		}
		check.EmailTaken = taken
		return nil
	})
	g.Go(func() error {
		taken, err := s.exists(gctx, "number", number)
		if err != nil {
			return err
		}
		check.NumberTaken = taken
		return nil
	})

	if err := g.Wait(); err != nil {
		return UniqueCheck{}, err
	}
	return check, nil
}

func (s *Store) exists(ctx context.Context, column, value string) (bool, error) {
	var one int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT 1 FROM registrations WHERE `+column+` = ? LIMIT 1`, value,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert menyimpan entri baru dan mengembalikan id yang diberikan engine.
// Pelanggaran index unik dipetakan ke ErrEmailTaken / ErrNumberTaken
// (penulis lain bisa menang di jendela antara check dan insert).
func (s *Store) Insert(ctx context.Context, reg Registration) (int64, error) {
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO registrations (name, email, number, timestamp) VALUES (?, ?, ?, ?)`,
		reg.Name, reg.Email, reg.Number, reg.Timestamp,
	)
	if err != nil {
		return 0, mapConstraintError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, nil
}

func mapConstraintError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "registrations.email"):
		return ErrEmailTaken
	case strings.Contains(msg, "registrations.number"):
		return ErrNumberTaken
	}
	return err
}

// All mengembalikan snapshot penuh seluruh entri, urut id (urutan daftar).
func (s *Store) All(ctx context.Context) ([]Registration, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, email, number, timestamp FROM registrations ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]Registration, 0)
	for rows.Next() {
		var r Registration
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Number, &r.Timestamp); err != nil {
			return nil, err
		}
		regs = append(regs, r)
	}
	return regs, rows.Err()
}
