package services

// ServiceContainer bundles the service facades handed to the route
// registration so handlers depend on interfaces only.
type ServiceContainer struct {
	Journal   JournalSvcFacade
	Inventory InventorySvcFacade
	Reporting ReportingSvcFacade
}
