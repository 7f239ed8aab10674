// internals/features/exports/route/export_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	exportController "absensiku_backend/internals/features/exports/controller"
	exportService "absensiku_backend/internals/features/exports/service"
)

func ExportRoutes(r fiber.Router, exporter *exportService.CSVExporter) {
	ctl := &exportController.ExportController{Exporter: exporter}

	r.Post("/export-csv", ctl.ExportCSV) // POST /api/export-csv
}
