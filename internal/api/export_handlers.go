package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ExportOrders отдает книгу заказов в виде .xlsx-файла для администратора.
func (a *API) ExportOrders(w http.ResponseWriter, r *http.Request) {
	orders := a.Orders.All()

	f := excelize.NewFile()
	sheetName := "Orders"
	index, _ := f.NewSheet(sheetName) // NewFile создает Sheet1, ошибку дубликата игнорируем
	f.DeleteSheet("Sheet1")           // Удаляем стандартный лист
	f.SetActiveSheet(index)

	headers := []string{"Order ID", "Scrap Type", "Weight (kg)", "Mobile", "Status", "Address", "Description", "Created At", "Updated At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, o := range orders {
		row := rowIndex + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), o.OrderID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), o.ScrapType)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), o.Weight)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), o.Mobile)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), o.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), o.Address)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), o.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), o.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), o.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	filename := fmt.Sprintf("orders-%s.xlsx", uuid.New().String())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if err := f.Write(w); err != nil {
		// Заголовки уже отправлены, статус менять поздно.
		log.Printf("ExportOrders: ошибка записи Excel-файла: %v", err)
	}
}
