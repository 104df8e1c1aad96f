package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/zakariadrk66/BTP/internal/procurement/repository"
)

// ReportService produces spreadsheet exports of procurement data.
type ReportService struct {
	repos *repository.Repositories
}

func NewReportService(repos *repository.Repositories) *ReportService {
	return &ReportService{repos: repos}
}

var orderExportHeaders = []string{
	"Order Number", "Status", "Supplier", "Article", "Quantity",
	"Unit Price", "Total Amount", "Order Date",
}

// ExportOrders renders the filtered purchase orders into a workbook.
func (s *ReportService) ExportOrders(ctx context.Context, filters map[string]string) (*excelize.File, string, error) {
	orders, _, err := s.repos.PO.FindAll(ctx, 1, 10000, filters)
	if err != nil {
		return nil, "", fmt.Errorf("list orders: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Purchase Orders"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range orderExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	total := 0.0
	for rowIdx, po := range orders {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), po.OrderNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), po.Status)
		supplier := po.SupplierID
		if po.Supplier != nil {
			supplier = po.Supplier.Name
		}
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), supplier)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), po.ArticleSKU)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), po.QtyOrdered)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), po.UnitPrice.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), po.TotalAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), po.OrderDate.Format("2006-01-02"))
		total += po.TotalAmount.InexactFloat64()
	}

	summaryRow := len(orders) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), fmt.Sprintf("%d orders", len(orders)))
	f.SetCellValue(sheet, fmt.Sprintf("G%d", summaryRow), total)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("H%d", summaryRow), summaryStyle)

	colWidths := []float64{14, 12, 24, 18, 10, 12, 14, 12}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("purchase_orders_%s.xlsx", time.Now().Format("2006-01-02"))
	return f, filename, nil
}
