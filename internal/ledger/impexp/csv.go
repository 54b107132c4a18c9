// Package impexp 定义实体与外部表格格式之间的字段映射。
// 每类实体的列序是固定契约；导入走正常的新增路径，
// 让ID分配、环检测等不变量对导入数据同样生效。
package impexp

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/gestio-app/gestio/internal/ledger/service"
)

const dateLayout = "2006-01-02"

// 各实体的固定列序（v1）
var (
	ClientColumns = []string{
		"name", "type", "national_id", "tax_number", "email", "phone",
		"street", "number", "complement", "city", "state", "zip_code", "notes",
	}
	ProductColumns = []string{
		"name", "description", "type", "unit",
		"cost_price", "sale_price", "current_stock", "min_stock",
	}
	ProjectColumns = []string{
		"title", "description", "type", "status", "budget",
		"start_date", "delivery_date", "payment_terms", "notes",
	}
	TransactionColumns = []string{
		"description", "type", "category", "amount", "date",
	}
)

// 低于最小列数的行跳过而不是整体报错（有意的宽松策略）
const (
	minClientColumns      = 2
	minProductColumns     = 3
	minProjectColumns     = 3
	minTransactionColumns = 4
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseFloat 数字解析失败时回落为0，不中断导入
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseDate(s string) *time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// field 越界位置取空串，短行不越界
func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// readRows 读取全部数据行：首行视作表头跳过，
// 坏行和低于 minColumns 的短行静默跳过。
func readRows(r io.Reader, minColumns int) [][]string {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	header := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if header {
			header = false
			continue
		}
		if len(row) < minColumns {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// === Clients ===

func clientRow(c entity.Client) []string {
	return []string{
		c.Name, c.Type, c.NationalID, c.TaxNumber, c.Email, c.Phone,
		c.Address.Street, c.Address.Number, c.Address.Complement,
		c.Address.City, c.Address.State, c.Address.ZipCode, c.Notes,
	}
}

// ExportClients 按固定列序导出客户CSV
func ExportClients(w io.Writer, clients []entity.Client) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ClientColumns); err != nil {
		return err
	}
	for _, c := range clients {
		if err := cw.Write(clientRow(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportClients 逐行走正常新增路径导入客户，返回导入条数
func ImportClients(r io.Reader, svc *service.ClientService) (int, error) {
	count := 0
	for _, row := range readRows(r, minClientColumns) {
		req := &service.CreateClientRequest{
			Name:       field(row, 0),
			Type:       field(row, 1),
			NationalID: field(row, 2),
			TaxNumber:  field(row, 3),
			Email:      field(row, 4),
			Phone:      field(row, 5),
			Address: entity.Address{
				Street:     field(row, 6),
				Number:     field(row, 7),
				Complement: field(row, 8),
				City:       field(row, 9),
				State:      field(row, 10),
				ZipCode:    field(row, 11),
			},
			Notes: field(row, 12),
		}
		if _, err := svc.Create(req); err != nil {
			continue
		}
		count++
	}
	return count, nil
}

// === Products ===

func productRow(p entity.Product) []string {
	return []string{
		p.Name, p.Description, p.Type, p.Unit,
		formatFloat(p.CostPrice), formatFloat(p.SalePrice),
		formatFloat(p.CurrentStock), formatFloat(p.MinStock),
	}
}

// ExportProducts 按固定列序导出产品CSV。BOM组件图不在列映射内。
func ExportProducts(w io.Writer, products []entity.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ProductColumns); err != nil {
		return err
	}
	for _, p := range products {
		if err := cw.Write(productRow(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportProducts 逐行走正常新增路径导入产品，返回导入条数
func ImportProducts(r io.Reader, svc *service.ProductService) (int, error) {
	count := 0
	for _, row := range readRows(r, minProductColumns) {
		req := &service.CreateProductRequest{
			Name:         field(row, 0),
			Description:  field(row, 1),
			Type:         field(row, 2),
			Unit:         field(row, 3),
			CostPrice:    parseFloat(field(row, 4)),
			SalePrice:    parseFloat(field(row, 5)),
			CurrentStock: parseFloat(field(row, 6)),
			MinStock:     parseFloat(field(row, 7)),
		}
		if _, err := svc.Create(req); err != nil {
			continue
		}
		count++
	}
	return count, nil
}

// === Projects ===

func projectRow(p entity.Project) []string {
	return []string{
		p.Title, p.Description, p.Type, p.Status, formatFloat(p.Budget),
		formatDate(p.StartDate), formatDate(p.DeliveryDate),
		p.PaymentTerms, p.Notes,
	}
}

// ExportProjects 按固定列序导出项目CSV。编号和内部ID在导入时重新分配。
func ExportProjects(w io.Writer, projects []entity.Project) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ProjectColumns); err != nil {
		return err
	}
	for _, p := range projects {
		if err := cw.Write(projectRow(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportProjects 逐行走正常新增路径导入项目，返回导入条数。
// 生命周期副作用（定金入账等）对导入的项目同样生效。
func ImportProjects(r io.Reader, svc *service.ProjectService) (int, error) {
	count := 0
	for _, row := range readRows(r, minProjectColumns) {
		req := &service.CreateProjectRequest{
			Title:        field(row, 0),
			Description:  field(row, 1),
			Type:         field(row, 2),
			Status:       field(row, 3),
			Budget:       parseFloat(field(row, 4)),
			StartDate:    parseDate(field(row, 5)),
			DeliveryDate: parseDate(field(row, 6)),
			PaymentTerms: field(row, 7),
			Notes:        field(row, 8),
		}
		if _, err := svc.Create(req); err != nil {
			continue
		}
		count++
	}
	return count, nil
}

// === Transactions ===

func transactionRow(t entity.Transaction) []string {
	return []string{
		t.Description, t.Type, t.Category,
		formatFloat(t.Amount), t.Date.Format(dateLayout),
	}
}

// ExportTransactions 按固定列序导出财务流水CSV
func ExportTransactions(w io.Writer, transactions []entity.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TransactionColumns); err != nil {
		return err
	}
	for _, t := range transactions {
		if err := cw.Write(transactionRow(t)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportTransactions 逐行走正常新增路径导入流水，返回导入条数
func ImportTransactions(r io.Reader, svc *service.TransactionService) (int, error) {
	count := 0
	for _, row := range readRows(r, minTransactionColumns) {
		req := &service.CreateTransactionRequest{
			Description: field(row, 0),
			Type:        field(row, 1),
			Category:    field(row, 2),
			Amount:      parseFloat(field(row, 3)),
			Date:        parseDate(field(row, 4)),
		}
		if _, err := svc.Create(req); err != nil {
			continue
		}
		count++
	}
	return count, nil
}
