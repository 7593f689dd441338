package domain

import (
	"time"
)

// Категории отчетов - небольшой фиксированный набор.
const (
	ReportCategorySales        = "sales"
	ReportCategoryOwnership    = "ownership"
	ReportCategoryRegistration = "registration"
	ReportCategoryFinancial    = "financial"
)

// ReportDocument - дескриптор единственного документа отчета.
type ReportDocument struct {
	Name     string
	URL      string
	FileType string
}

// Report - сгенерированный документ. С точки зрения клиента read-only.
type Report struct {
	ID          string
	Title       string
	Description string
	Category    string
	Author      string
	SizeLabel   string
	RecordCount int
	Document    ReportDocument
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
