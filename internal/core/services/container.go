package services

import (
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	portssvc "github.com/invoicerhq/invoicer_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Company:   NewCompanyService(repos.CompanyRepo),
		Client:    NewClientService(repos.ClientRepo),
		Project:   NewProjectService(repos.ProjectRepo),
		Invoice:   NewInvoiceService(repos.InvoiceRepo),
		Payment:   NewPaymentService(repos.PaymentRepo),
		Dashboard: NewDashboardService(repos.DashboardRepo),
		User:      NewUserService(repos.UserRepo),
	}
}
