package controller

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	exportService "absensiku_backend/internals/features/exports/service"
)

func newExportApp(t *testing.T, artifactPath string) *fiber.App {
	t.Helper()
	app := fiber.New()
	ctl := &ExportController{Exporter: exportService.NewCSVExporter(artifactPath)}
	app.Post("/api/export-csv", ctl.ExportCSV)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.StatusCode, parsed
}

func TestExportCSVSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registrations.csv")
	app := newExportApp(t, path)

	status, body := postJSON(t, app, "/api/export-csv", `[{"id":1,"name":"Budi"}]`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if msg, _ := body["message"].(string); msg == "" {
		t.Fatalf("expected message in body, got %v", body)
	}
}

func TestExportCSVEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registrations.csv")
	app := newExportApp(t, path)

	status, body := postJSON(t, app, "/api/export-csv", `[]`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if _, ok := body["message"]; !ok {
		t.Fatalf("expected message in body, got %v", body)
	}
}

func TestExportCSVFieldMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registrations.csv")
	app := newExportApp(t, path)

	status, _ := postJSON(t, app, "/api/export-csv", `[{"a":1},{"b":2}]`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestExportCSVWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidak-ada", "registrations.csv")
	app := newExportApp(t, path)

	status, body := postJSON(t, app, "/api/export-csv", `[{"id":1}]`)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if _, ok := body["error"]; !ok {
		t.Fatalf("expected error detail in body, got %v", body)
	}
}
