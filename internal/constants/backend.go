package constants

// Базовые пути четырех независимых групп ресурсов удаленного backend.
const (
	PropertiesBasePath    = "/property_listings_routes"
	RegistrationsBasePath = "/housing_registration_routes"
	SalesBasePath         = "/property_sales_routes"
	ReportsBasePath       = "/reports_routes"
	ProfileBasePath       = "/user_routes"
)

// Конвенциональные операции каждой группы.
const (
	OpGetAll    = "/getall"
	OpGetByUser = "/getbyuser"
	OpCreate    = "/create"
	OpUpdate    = "/update"
	OpDelete    = "/delete"
)

// Категории путей в объектном хранилище (префикс ключа загрузки).
const (
	StorageCategoryRegistrations = "housing_registrations"
	StorageCategorySales         = "property_sales"
)
