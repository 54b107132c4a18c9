package impexp

import (
	"fmt"
	"io"

	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/xuri/excelize/v2"
)

// ExportWorkbook 把整个账本导出为一个XLSX工作簿，每类实体一个工作表，
// 列序与CSV映射保持一致。
func ExportWorkbook(w io.Writer, clients []entity.Client, products []entity.Product,
	projects []entity.Project, transactions []entity.Transaction) error {

	f := excelize.NewFile()
	defer f.Close()

	clientRows := make([][]string, 0, len(clients))
	for _, c := range clients {
		clientRows = append(clientRows, clientRow(c))
	}
	if err := writeSheet(f, "Clients", ClientColumns, clientRows); err != nil {
		return err
	}

	productRows := make([][]string, 0, len(products))
	for _, p := range products {
		productRows = append(productRows, productRow(p))
	}
	if err := writeSheet(f, "Products", ProductColumns, productRows); err != nil {
		return err
	}

	projectRows := make([][]string, 0, len(projects))
	for _, p := range projects {
		projectRows = append(projectRows, projectRow(p))
	}
	if err := writeSheet(f, "Projects", ProjectColumns, projectRows); err != nil {
		return err
	}

	transactionRows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		transactionRows = append(transactionRows, transactionRow(t))
	}
	if err := writeSheet(f, "Transactions", TransactionColumns, transactionRows); err != nil {
		return err
	}

	// excelize 默认创建的 Sheet1 不需要
	f.DeleteSheet("Sheet1")

	return f.Write(w)
}

func writeSheet(f *excelize.File, name string, header []string, rows [][]string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	if err := setRow(f, name, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNum), &cells); err != nil {
		return fmt.Errorf("write sheet %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
