// internals/features/exports/controller/export_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	exportService "absensiku_backend/internals/features/exports/service"
	helper "absensiku_backend/internals/helpers"
)

type ExportController struct {
	Exporter *exportService.CSVExporter
}

/* =========================================================
   EXPORT CSV
   POST /api/export-csv
   Body: array objek registrasi (snapshot penuh, bukan diff).
   400 → batch kosong / payload rusak / field tidak homogen
   500 → gagal tulis artefak
   ========================================================= */
func (h *ExportController) ExportCSV(c *fiber.Ctx) error {
	n, err := h.Exporter.ExportJSON(c.Body())
	if err != nil {
		if errors.Is(err, exportService.ErrEmptyBatch) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Tidak ada data registrasi untuk diekspor.")
		}

		var wf *exportService.WriteFailureError
		if errors.As(err, &wf) {
			log.Printf("export csv gagal: %v", err)
			return helper.JsonErrorWithDetail(c, fiber.StatusInternalServerError,
				"Gagal menyimpan file CSV di server.", wf.Err)
		}

		// payload rusak / field mismatch → kesalahan caller
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	log.Printf("CSV tersimpan di %s (%d baris)", h.Exporter.Path(), n)
	return helper.JsonMessage(c, fiber.StatusOK, "Data CSV berhasil disimpan di server.")
}
