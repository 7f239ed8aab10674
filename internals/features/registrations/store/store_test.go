package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "registrations.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return s
}

func mustInsert(t *testing.T, s *Store, name, email, number string) int64 {
	t.Helper()
	id, err := s.Insert(context.Background(), Registration{
		Name: name, Email: email, Number: number, Timestamp: "2026-08-29T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("insert %s: %v", email, err)
	}
	return id
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(" "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registrations.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("open pertama: %v", err)
	}
	mustInsert(t, s1, "Budi", "budi@mail.com", "0811")
	if err := s1.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// buka ulang file yang sama: skema sudah ada, data tetap utuh
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("open kedua: %v", err)
	}
	defer s2.Close()

	regs, err := s2.All(context.Background())
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(regs) != 1 || regs[0].Email != "budi@mail.com" {
		t.Fatalf("data hilang setelah reopen: %+v", regs)
	}
}

func TestInsertAssignsMonotonicIDs(t *testing.T) {
	s := openTestStore(t)

	id1 := mustInsert(t, s, "Budi", "budi@mail.com", "0811")
	id2 := mustInsert(t, s, "Sari", "sari@mail.com", "0812")
	if id2 <= id1 {
		t.Fatalf("id tidak monoton: %d lalu %d", id1, id2)
	}
}

func TestInsertRejectsDuplicateEmail(t *testing.T) {
	s := openTestStore(t)
	mustInsert(t, s, "Budi", "budi@mail.com", "0811")

	_, err := s.Insert(context.Background(), Registration{
		Name: "Budi 2", Email: "budi@mail.com", Number: "0899", Timestamp: "2026-08-29T10:01:00Z",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// insert gagal tidak boleh menambah baris
	regs, err := s.All(context.Background())
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(regs) != 1 {
		t.Fatalf("jumlah baris = %d, want 1", len(regs))
	}
}

func TestInsertRejectsDuplicateNumber(t *testing.T) {
	s := openTestStore(t)
	mustInsert(t, s, "Budi", "budi@mail.com", "0811")

	_, err := s.Insert(context.Background(), Registration{
		Name: "Sari", Email: "sari@mail.com", Number: "0811", Timestamp: "2026-08-29T10:01:00Z",
	})
	if !errors.Is(err, ErrNumberTaken) {
		t.Fatalf("expected ErrNumberTaken, got %v", err)
	}
}

func TestCheckUniqueReportsBothFields(t *testing.T) {
	s := openTestStore(t)
	mustInsert(t, s, "Budi", "budi@mail.com", "0811")

	ctx := context.Background()

	check, err := s.CheckUnique(ctx, "budi@mail.com", "0899")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !check.EmailTaken || check.NumberTaken {
		t.Fatalf("email-only dup: %+v", check)
	}

	check, err = s.CheckUnique(ctx, "lain@mail.com", "0811")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if check.EmailTaken || !check.NumberTaken {
		t.Fatalf("number-only dup: %+v", check)
	}

	// dua-duanya duplikat: kedua flag harus terisi (tidak ada short-circuit)
	check, err = s.CheckUnique(ctx, "budi@mail.com", "0811")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !check.EmailTaken || !check.NumberTaken {
		t.Fatalf("double dup: %+v", check)
	}
}

func TestAllReturnsInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	mustInsert(t, s, "Budi", "budi@mail.com", "0811")
	mustInsert(t, s, "Sari", "sari@mail.com", "0812")
	mustInsert(t, s, "Tono", "tono@mail.com", "0813")

	regs, err := s.All(context.Background())
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(regs) != 3 {
		t.Fatalf("jumlah = %d, want 3", len(regs))
	}
	for i := 1; i < len(regs); i++ {
		if regs[i].ID <= regs[i-1].ID {
			t.Fatalf("urutan id tidak naik: %+v", regs)
		}
	}
}
