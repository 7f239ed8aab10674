// internals/features/registrations/service/registration_service.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"absensiku_backend/internals/features/registrations/store"
)

/* =========================================================
   REGISTRATION FLOW
   check unik → insert lokal → serah-terima export (best-effort).
   Durabilitas lokal dan salinan remote adalah jaminan yang
   terpisah: export gagal TIDAK me-rollback insert.
   ========================================================= */

type RegistrationService struct {
	Store     *store.Store
	ExportURL string
	Client    *http.Client
}

func NewRegistrationService(st *store.Store, exportURL string) *RegistrationService {
	return &RegistrationService{
		Store:     st,
		ExportURL: exportURL,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type RegisterInput struct {
	Name   string
	Email  string
	Number string
}

// RegisterResult: entri yang tersimpan + hasil leg export.
// ExportErr != nil berarti sukses parsial (data lokal aman, CSV tidak).
type RegisterResult struct {
	Registration  store.Registration
	ExportMessage string
	ExportErr     error
}

// Register menjalankan alur pendaftaran penuh. Error duplikat memakai
// prioritas email: kalau email DAN nomor sama-sama duplikat, yang
// dilaporkan tetap ErrEmailTaken.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	check, err := s.Store.CheckUnique(ctx, in.Email, in.Number)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("cek duplikat: %w", err)
	}
	if check.EmailTaken {
		return RegisterResult{}, store.ErrEmailTaken
	}
	if check.NumberTaken {
		return RegisterResult{}, store.ErrNumberTaken
	}

	reg := store.Registration{
		Name:      in.Name,
		Email:     in.Email,
		Number:    in.Number,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	// constraint engine tetap bisa menolak di sini (race check-then-act
	// yang memang diterima): error duplikatnya sudah bertipe sama
	id, err := s.Store.Insert(ctx, reg)
	if err != nil {
		return RegisterResult{}, err
	}
	reg.ID = id

	result := RegisterResult{Registration: reg}
	result.ExportMessage, result.ExportErr = s.exportSnapshot(ctx)
	return result, nil
}

// exportSnapshot mengirim SELURUH isi store (bukan cuma entri baru)
// ke endpoint export. Tepat satu panggilan per insert sukses.
func (s *RegistrationService) exportSnapshot(ctx context.Context) (string, error) {
	regs, err := s.Store.All(ctx)
	if err != nil {
		return "", fmt.Errorf("baca snapshot: %w", err)
	}

	payload, err := sonic.Marshal(regs)
	if err != nil {
		return "", fmt.Errorf("serialisasi snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.ExportURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		Message string `json:"message"`
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("respons export tidak terbaca: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("export ditolak server (%d): %s", resp.StatusCode, body.Message)
	}
	return body.Message, nil
}
