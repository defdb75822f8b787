package bookings

import "github.com/fcja/agendamentos/internal/domain"

// Requests carry raw form values. Validation and normalization happen in the
// service; everything arrives as strings, the way HTML forms deliver it.

type CreateVisitorRequest struct {
	Name        string
	Gender      string
	Email       string
	Phone       string
	Address     string
	PartySize   string
	VisitDate   string
	Shift       string
	ArrivalTime string
	Duration    string
	Notes       string
}

type CreateSchoolRequest struct {
	SchoolName     string
	Representative string
	Email          string
	Phone          string
	Address        string
	StudentCount   string
	VisitDate      string
	Shift          string
	ArrivalTime    string
	Duration       string
	Notes          string
}

type CreateInstitutionRequest struct {
	InstitutionName string
	Representative  string
	Email           string
	Phone           string
	Address         string
	StudentCount    string
	VisitDate       string
	Shift           string
	ArrivalTime     string
	Duration        string
	Notes           string
}

type CreateResearcherRequest struct {
	Name          string
	Gender        string
	Email         string
	Phone         string
	Institution   string
	ResearchTopic string
	VisitDate     string
	Shift         string
	ArrivalTime   string
	Duration      string
	Notes         string
}

// RecentBookings is the /ultimos page payload, newest first per category.
type RecentBookings struct {
	Visitors     []*domain.Visitor
	Schools      []*domain.School
	Institutions []*domain.Institution
	Researchers  []*domain.Researcher
}
