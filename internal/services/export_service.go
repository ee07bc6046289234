package services

import (
	"github.com/xuri/excelize/v2"

	"package-tracker/internal/models"
)

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

const exportSheet = "Packages"

// BuildPackagesReport builds an xlsx workbook with one row per package,
// using the same denormalized fields the JSON API exposes.
func (s *ExportService) BuildPackagesReport(packages []*models.FormattedPackage) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	headers := []string{
		"ID", "Recipient", "Address", "Status",
		"Created At", "Delivered At",
		"Delivery Name", "Delivery Phone", "Delivery Status",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, pkg := range packages {
		deliveredAt := ""
		if pkg.DeliveredAt != nil {
			deliveredAt = pkg.DeliveredAt.Format("2006-01-02 15:04:05")
		}
		phone := ""
		if pkg.DeliveryPhone != nil {
			phone = *pkg.DeliveryPhone
		}
		status := ""
		if pkg.DeliveryStatus != nil {
			status = *pkg.DeliveryStatus
		}

		values := []interface{}{
			pkg.ID, pkg.Destinatario, pkg.Direccion, string(pkg.Status),
			pkg.CreatedAt.Format("2006-01-02 15:04:05"), deliveredAt,
			pkg.DeliveryName, phone, status,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
