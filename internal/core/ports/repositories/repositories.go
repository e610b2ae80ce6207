package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CompanyRepo   CompanyRepository
	ClientRepo    ClientRepository
	ProjectRepo   ProjectRepository
	InvoiceRepo   InvoiceRepository
	PaymentRepo   PaymentRepository
	DashboardRepo DashboardRepository
	UserRepo      UserRepository
}
