package service

import (
	"gorm.io/gorm"

	"github.com/zakariadrk66/BTP/internal/procurement/repository"
)

// Services bundles the procurement services.
type Services struct {
	Supplier    *SupplierService
	Project     *ProjectService
	Article     *ArticleService
	Procurement *ProcurementService
	Order       *OrderService
	Billing     *BillingService
	Receiving   *ReceivingService
	Report      *ReportService
}

func NewServices(db *gorm.DB, repos *repository.Repositories) *Services {
	return &Services{
		Supplier:    NewSupplierService(repos.Supplier),
		Project:     NewProjectService(repos.Project),
		Article:     NewArticleService(repos.Article),
		Procurement: NewProcurementService(db, repos),
		Order:       NewOrderService(db, repos),
		Billing:     NewBillingService(db, repos),
		Receiving:   NewReceivingService(db, repos),
		Report:      NewReportService(repos),
	}
}
