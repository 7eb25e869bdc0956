package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	ApplicationService ApplicationService
	InquiryService     InquiryService
	ContactService     ContactService
	AdminService       AdminService
	AnalyticsService   AnalyticsService
}
