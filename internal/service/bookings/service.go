// Package bookings validates and persists visit bookings for the four
// visitor categories.
package bookings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fcja/agendamentos/internal/domain"
	"github.com/fcja/agendamentos/internal/validation"
	"github.com/fcja/agendamentos/pkg/types"
)

// Service validates booking submissions and hands them to the store.
type Service struct {
	store  Store
	logger Logger
}

func NewService(store Store, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// CreateVisitor validates and stores an individual visit booking.
func (s *Service) CreateVisitor(ctx context.Context, req *CreateVisitorRequest) (*domain.Visitor, error) {
	date, shift, err := s.validateCommon(req.Email, req.Phone, req.VisitDate, req.Shift, visitRule)
	if err != nil {
		s.logger.Warn("CreateVisitor: rejected submission for %s: %v", req.Email, err)
		return nil, err
	}

	v := &domain.Visitor{
		Name:        strings.TrimSpace(req.Name),
		Gender:      strings.TrimSpace(req.Gender),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     strings.TrimSpace(req.Address),
		PartySize:   parseCount(req.PartySize, 1),
		VisitDate:   date,
		Shift:       shift,
		ArrivalTime: strings.TrimSpace(req.ArrivalTime),
		Duration:    strings.TrimSpace(req.Duration),
		Notes:       strings.TrimSpace(req.Notes),
	}

	created, err := s.store.InsertVisitor(ctx, v)
	if err != nil {
		s.logger.Error("CreateVisitor: insert failed: %v", err)
		return nil, fmt.Errorf("%w: CreateVisitor - insert: %v", ErrStorage, err)
	}
	s.logger.Info("CreateVisitor: booking id=%d stored for %s on %s (%s)",
		created.ID, created.Email, created.VisitDate, created.Shift)
	return created, nil
}

// CreateSchool validates and stores a school group booking.
func (s *Service) CreateSchool(ctx context.Context, req *CreateSchoolRequest) (*domain.School, error) {
	date, shift, err := s.validateCommon(req.Email, req.Phone, req.VisitDate, req.Shift, visitRule)
	if err != nil {
		s.logger.Warn("CreateSchool: rejected submission for %s: %v", req.Email, err)
		return nil, err
	}

	sc := &domain.School{
		SchoolName:     strings.TrimSpace(req.SchoolName),
		Representative: strings.TrimSpace(req.Representative),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		Address:        strings.TrimSpace(req.Address),
		StudentCount:   parseCount(req.StudentCount, 0),
		VisitDate:      date,
		Shift:          shift,
		ArrivalTime:    strings.TrimSpace(req.ArrivalTime),
		Duration:       strings.TrimSpace(req.Duration),
		Notes:          strings.TrimSpace(req.Notes),
	}

	created, err := s.store.InsertSchool(ctx, sc)
	if err != nil {
		s.logger.Error("CreateSchool: insert failed: %v", err)
		return nil, fmt.Errorf("%w: CreateSchool - insert: %v", ErrStorage, err)
	}
	s.logger.Info("CreateSchool: booking id=%d stored for %s on %s (%s)",
		created.ID, created.SchoolName, created.VisitDate, created.Shift)
	return created, nil
}

// CreateInstitution validates and stores a higher-education group booking.
func (s *Service) CreateInstitution(ctx context.Context, req *CreateInstitutionRequest) (*domain.Institution, error) {
	date, shift, err := s.validateCommon(req.Email, req.Phone, req.VisitDate, req.Shift, visitRule)
	if err != nil {
		s.logger.Warn("CreateInstitution: rejected submission for %s: %v", req.Email, err)
		return nil, err
	}

	i := &domain.Institution{
		InstitutionName: strings.TrimSpace(req.InstitutionName),
		Representative:  strings.TrimSpace(req.Representative),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		Address:         strings.TrimSpace(req.Address),
		StudentCount:    parseCount(req.StudentCount, 0),
		VisitDate:       date,
		Shift:           shift,
		ArrivalTime:     strings.TrimSpace(req.ArrivalTime),
		Duration:        strings.TrimSpace(req.Duration),
		Notes:           strings.TrimSpace(req.Notes),
	}

	created, err := s.store.InsertInstitution(ctx, i)
	if err != nil {
		s.logger.Error("CreateInstitution: insert failed: %v", err)
		return nil, fmt.Errorf("%w: CreateInstitution - insert: %v", ErrStorage, err)
	}
	s.logger.Info("CreateInstitution: booking id=%d stored for %s on %s (%s)",
		created.ID, created.InstitutionName, created.VisitDate, created.Shift)
	return created, nil
}

// CreateResearcher validates and stores a research visit booking. Research
// visits follow the weekday rule, not the open-to-public rule.
func (s *Service) CreateResearcher(ctx context.Context, req *CreateResearcherRequest) (*domain.Researcher, error) {
	date, shift, err := s.validateCommon(req.Email, req.Phone, req.VisitDate, req.Shift, researchRule)
	if err != nil {
		s.logger.Warn("CreateResearcher: rejected submission for %s: %v", req.Email, err)
		return nil, err
	}

	r := &domain.Researcher{
		Name:          strings.TrimSpace(req.Name),
		Gender:        strings.TrimSpace(req.Gender),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Institution:   strings.TrimSpace(req.Institution),
		ResearchTopic: strings.TrimSpace(req.ResearchTopic),
		VisitDate:     date,
		Shift:         shift,
		ArrivalTime:   strings.TrimSpace(req.ArrivalTime),
		Duration:      strings.TrimSpace(req.Duration),
		Notes:         strings.TrimSpace(req.Notes),
	}

	created, err := s.store.InsertResearcher(ctx, r)
	if err != nil {
		s.logger.Error("CreateResearcher: insert failed: %v", err)
		return nil, fmt.Errorf("%w: CreateResearcher - insert: %v", ErrStorage, err)
	}
	s.logger.Info("CreateResearcher: booking id=%d stored for %s on %s (%s)",
		created.ID, created.Email, created.VisitDate, created.Shift)
	return created, nil
}

// Recent returns the newest bookings per category for the public recap page.
// A failing category degrades to an empty list so one broken table does not
// blank the whole page.
func (s *Service) Recent(ctx context.Context, limit uint64) *RecentBookings {
	f := domain.ListFilter{Limit: limit}
	out := &RecentBookings{}

	var err error
	if out.Visitors, err = s.store.ListVisitors(ctx, f); err != nil {
		s.logger.Warn("Recent: visitors unavailable: %v", err)
		out.Visitors = []*domain.Visitor{}
	}
	if out.Schools, err = s.store.ListSchools(ctx, f); err != nil {
		s.logger.Warn("Recent: schools unavailable: %v", err)
		out.Schools = []*domain.School{}
	}
	if out.Institutions, err = s.store.ListInstitutions(ctx, f); err != nil {
		s.logger.Warn("Recent: institutions unavailable: %v", err)
		out.Institutions = []*domain.Institution{}
	}
	if out.Researchers, err = s.store.ListResearchers(ctx, f); err != nil {
		s.logger.Warn("Recent: researchers unavailable: %v", err)
		out.Researchers = []*domain.Researcher{}
	}
	return out
}

// Rows lists one category as string rows in column order, the shape the
// administrative dumps and the exporters consume.
func (s *Service) Rows(ctx context.Context, cat domain.Category, f domain.ListFilter) ([][]string, error) {
	switch cat {
	case domain.CategoryVisitor:
		list, err := s.store.ListVisitors(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%w: Rows - list %s: %v", ErrStorage, cat, err)
		}
		rows := make([][]string, 0, len(list))
		for _, v := range list {
			rows = append(rows, v.Row())
		}
		return rows, nil
	case domain.CategorySchool:
		list, err := s.store.ListSchools(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%w: Rows - list %s: %v", ErrStorage, cat, err)
		}
		rows := make([][]string, 0, len(list))
		for _, v := range list {
			rows = append(rows, v.Row())
		}
		return rows, nil
	case domain.CategoryInstitution:
		list, err := s.store.ListInstitutions(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%w: Rows - list %s: %v", ErrStorage, cat, err)
		}
		rows := make([][]string, 0, len(list))
		for _, v := range list {
			rows = append(rows, v.Row())
		}
		return rows, nil
	case domain.CategoryResearcher:
		list, err := s.store.ListResearchers(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%w: Rows - list %s: %v", ErrStorage, cat, err)
		}
		rows := make([][]string, 0, len(list))
		for _, v := range list {
			rows = append(rows, v.Row())
		}
		return rows, nil
	}
	return nil, fmt.Errorf("%w: Rows - unknown category %q", ErrStorage, cat)
}

// Records lists one category as its typed slice, for JSON export where the
// struct tags and field types must survive.
func (s *Service) Records(ctx context.Context, cat domain.Category, f domain.ListFilter) (interface{}, error) {
	switch cat {
	case domain.CategoryVisitor:
		list, err := s.store.ListVisitors(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%w: Records - list %s: %v", ErrStorage, cat, err)
		}
		return list, nil
	case domain.CategorySchool:
		list, err := s.store.ListSchools(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%w: Records - list %s: %v", ErrStorage, cat, err)
		}
		return list, nil
	case domain.CategoryInstitution:
		list, err := s.store.ListInstitutions(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%w: Records - list %s: %v", ErrStorage, cat, err)
		}
		return list, nil
	case domain.CategoryResearcher:
		list, err := s.store.ListResearchers(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%w: Records - list %s: %v", ErrStorage, cat, err)
		}
		return list, nil
	}
	return nil, fmt.Errorf("%w: Records - unknown category %q", ErrStorage, cat)
}

// dateRule checks a parsed submission date against a category's calendar.
type dateRule struct {
	ok      func(s string) bool
	onError error
}

var (
	visitRule    = dateRule{ok: validation.ValidVisitDate, onError: ErrInvalidVisitDate}
	researchRule = dateRule{ok: validation.ValidResearchDate, onError: ErrInvalidResearchDate}
)

// validateCommon runs the shared field checks in a fixed order so the first
// failure names the field the user must fix.
func (s *Service) validateCommon(email, phone, dateStr, shiftStr string, rule dateRule) (types.Date, domain.Shift, error) {
	if !validation.ValidEmail(strings.TrimSpace(email)) {
		return types.Date{}, "", ErrInvalidEmail
	}
	if !validation.ValidPhone(phone) {
		return types.Date{}, "", ErrInvalidPhone
	}
	parsed, err := validation.ParseDate(dateStr)
	if err != nil {
		return types.Date{}, "", ErrInvalidDate
	}
	if !rule.ok(dateStr) {
		return types.Date{}, "", rule.onError
	}
	shift, ok := validation.NormalizeShift(shiftStr)
	if !ok {
		return types.Date{}, "", ErrInvalidShift
	}
	return types.NewDate(parsed), shift, nil
}

// parseCount turns an optional numeric form field into a count, falling back
// to def when the field is empty or not a positive number.
func parseCount(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
