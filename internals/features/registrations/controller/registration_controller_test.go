package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	registrationService "absensiku_backend/internals/features/registrations/service"
	"absensiku_backend/internals/features/registrations/store"
)

func newRegistrationApp(t *testing.T) *fiber.App {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "registrations.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	exportSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Data CSV berhasil disimpan di server."})
	}))
	t.Cleanup(exportSrv.Close)

	ctl := &RegistrationController{Service: registrationService.NewRegistrationService(st, exportSrv.URL)}

	app := fiber.New()
	app.Post("/api/registrations", ctl.CreateRegistration)
	app.Get("/api/registrations", ctl.ListRegistrations)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

func TestCreateRegistrationSuccess(t *testing.T) {
	app := newRegistrationApp(t)

	status, raw := doJSON(t, app, "POST", "/api/registrations",
		`{"name":"Budi","email":"budi@mail.com","number":"0811"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", status, raw)
	}

	var body struct {
		Message string `json:"message"`
		Data    struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.ID == 0 {
		t.Fatalf("expected assigned id, body %s", raw)
	}
	if !strings.Contains(body.Message, "Pendaftaran berhasil") {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestCreateRegistrationDuplicateEmailPriority(t *testing.T) {
	app := newRegistrationApp(t)

	if status, _ := doJSON(t, app, "POST", "/api/registrations",
		`{"name":"Budi","email":"budi@mail.com","number":"0811"}`); status != fiber.StatusCreated {
		t.Fatalf("seed status = %d", status)
	}

	// email dan nomor dua-duanya duplikat → pesan email yang muncul
	status, raw := doJSON(t, app, "POST", "/api/registrations",
		`{"name":"Budi 2","email":"budi@mail.com","number":"0811"}`)
	if status != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409", status)
	}
	if !strings.Contains(string(raw), "Email") {
		t.Fatalf("expected email-priority message, got %s", raw)
	}
}

func TestCreateRegistrationMissingFields(t *testing.T) {
	app := newRegistrationApp(t)

	status, _ := doJSON(t, app, "POST", "/api/registrations", `{"name":"Budi"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestListRegistrations(t *testing.T) {
	app := newRegistrationApp(t)

	for _, payload := range []string{
		`{"name":"Budi","email":"budi@mail.com","number":"0811"}`,
		`{"name":"Sari","email":"sari@mail.com","number":"0812"}`,
	} {
		if status, _ := doJSON(t, app, "POST", "/api/registrations", payload); status != fiber.StatusCreated {
			t.Fatalf("seed status = %d", status)
		}
	}

	status, raw := doJSON(t, app, "GET", "/api/registrations", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var list []map[string]any
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("decode: %v (body %s)", err, raw)
	}
	if len(list) != 2 {
		t.Fatalf("jumlah = %d, want 2", len(list))
	}
}
