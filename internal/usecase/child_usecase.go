package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"famlink-api/internal/converter"
	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
	"famlink-api/internal/domain/repository"
	"famlink-api/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrChildNotFound  = errors.New("child not found")
	ErrParentNotFound = errors.New("parent not found")
	ErrInvalidParent  = errors.New("invalid parent")
)

type ChildUsecase interface {
	Create(ctx context.Context, req *dto.CreateChildRequest) (*dto.ChildResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ChildDetailResponse, error)
	GetByParent(ctx context.Context, parentID uuid.UUID) (*dto.ChildListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateChildRequest) (*dto.ChildResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Dashboard(ctx context.Context, id uuid.UUID) (*dto.ChildDashboardResponse, error)
}

type childUsecase struct {
	childRepo       repository.ChildRepository
	userRepo        repository.UserRepository
	recordRepo      repository.MedicalRecordRepository
	appointmentRepo repository.AppointmentRepository
	clock           clock.Clock
}

func NewChildUsecase(
	childRepo repository.ChildRepository,
	userRepo repository.UserRepository,
	recordRepo repository.MedicalRecordRepository,
	appointmentRepo repository.AppointmentRepository,
	clk clock.Clock,
) ChildUsecase {
	return &childUsecase{
		childRepo:       childRepo,
		userRepo:        userRepo,
		recordRepo:      recordRepo,
		appointmentRepo: appointmentRepo,
		clock:           clk,
	}
}

func (u *childUsecase) Create(ctx context.Context, req *dto.CreateChildRequest) (*dto.ChildResponse, error) {
	parent, err := u.userRepo.FindActiveByID(ctx, req.ParentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrInvalidParent
	}

	child := &entity.Child{
		ParentID:          req.ParentID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		BloodType:         req.BloodType,
		Allergies:         req.Allergies,
		MedicalConditions: req.MedicalConditions,
		EmergencyContact:  req.EmergencyContact,
		EmergencyPhone:    req.EmergencyPhone,
		ProfilePictureURL: req.ProfilePictureURL,
		IsActive:          true,
	}

	if err := u.childRepo.Create(ctx, child); err != nil {
		return nil, err
	}

	return converter.ChildToResponse(child, u.clock.Now()), nil
}

func (u *childUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ChildDetailResponse, error) {
	child, err := u.childRepo.FindActiveWithParent(ctx, id)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, ErrChildNotFound
	}

	now := u.clock.Now()

	records, _, err := u.recordRepo.FindActiveByChild(ctx, id, repository.MedicalRecordFilter{}, 0, 5)
	if err != nil {
		return nil, err
	}

	upcoming, err := u.appointmentRepo.FindUpcomingByChild(ctx, id, now, 3)
	if err != nil {
		return nil, err
	}

	return &dto.ChildDetailResponse{
		ChildResponse:        *converter.ChildToResponse(child, now),
		RecentMedicalRecords: converter.MedicalRecordsToResponses(records, now),
		UpcomingAppointments: converter.AppointmentsToResponses(upcoming, now),
	}, nil
}

func (u *childUsecase) GetByParent(ctx context.Context, parentID uuid.UUID) (*dto.ChildListResponse, error) {
	parent, err := u.userRepo.FindActiveByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}

	children, err := u.childRepo.FindActiveByParentID(ctx, parentID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	items := make([]dto.ChildListItem, len(children))
	for i := range children {
		child := &children[i]

		recordCount, err := u.recordRepo.CountActiveByChild(ctx, child.ID)
		if err != nil {
			return nil, err
		}
		appointmentCount, err := u.appointmentRepo.CountNonCancelledByChild(ctx, child.ID)
		if err != nil {
			return nil, err
		}

		items[i] = dto.ChildListItem{
			ChildResponse:       *converter.ChildToResponse(child, now),
			MedicalRecordsCount: recordCount,
			AppointmentsCount:   appointmentCount,
		}
	}

	return &dto.ChildListResponse{Children: items, Total: len(items)}, nil
}

func (u *childUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateChildRequest) (*dto.ChildResponse, error) {
	child, err := u.childRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, ErrChildNotFound
	}

	if req.FirstName != nil {
		child.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		child.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		child.DateOfBirth = *req.DateOfBirth
	}
	if req.Gender != nil {
		child.Gender = *req.Gender
	}
	if req.BloodType != nil {
		child.BloodType = *req.BloodType
	}
	if req.Allergies != nil {
		child.Allergies = *req.Allergies
	}
	if req.MedicalConditions != nil {
		child.MedicalConditions = *req.MedicalConditions
	}
	if req.EmergencyContact != nil {
		child.EmergencyContact = *req.EmergencyContact
	}
	if req.EmergencyPhone != nil {
		child.EmergencyPhone = *req.EmergencyPhone
	}
	if req.ProfilePictureURL != nil {
		child.ProfilePictureURL = *req.ProfilePictureURL
	}

	if err := u.childRepo.Update(ctx, child); err != nil {
		return nil, err
	}

	return converter.ChildToResponse(child, u.clock.Now()), nil
}

func (u *childUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	child, err := u.childRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if child == nil {
		return ErrChildNotFound
	}

	return u.childRepo.SoftDelete(ctx, id)
}

func (u *childUsecase) Dashboard(ctx context.Context, id uuid.UUID) (*dto.ChildDashboardResponse, error) {
	child, err := u.childRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, ErrChildNotFound
	}

	now := u.clock.Now()

	records, err := u.recordRepo.FindAllActiveByChild(ctx, id)
	if err != nil {
		return nil, err
	}

	upcoming, err := u.appointmentRepo.FindUpcomingByChild(ctx, id, now, 3)
	if err != nil {
		return nil, err
	}

	recentAppointments, err := u.appointmentRepo.FindRecentByChild(ctx, id, now.AddDate(0, 0, -30), 5)
	if err != nil {
		return nil, err
	}

	ageInMonths := child.AgeInMonths(now)

	return &dto.ChildDashboardResponse{
		Child:                *converter.ChildToSummary(child, now),
		HealthSummary:        buildHealthSummary(child, records),
		UpcomingAppointments: converter.AppointmentsToResponses(upcoming, now),
		RecentActivity:       buildRecentActivity(records, recentAppointments),
		GrowthMilestones:     growthMilestones(ageInMonths),
		HealthTips:           ageSpecificTips(ageInMonths),
	}, nil
}

func buildHealthSummary(child *entity.Child, records []entity.MedicalRecord) dto.DashboardHealthSummary {
	summary := dto.DashboardHealthSummary{
		TotalMedicalRecords: int64(len(records)),
		ActiveAllergies:     splitList(child.Allergies),
		MedicalConditions:   splitList(child.MedicalConditions),
	}

	for i := range records {
		record := &records[i]
		switch record.RecordType {
		case entity.RecordTypeCheckup:
			if summary.LastCheckup == nil || record.RecordDate.After(summary.LastCheckup.RecordDate) {
				summary.LastCheckup = &dto.LastCheckup{
					RecordDate: record.RecordDate,
					DoctorName: record.DoctorName,
				}
			}
		case entity.RecordTypeVaccination:
			if summary.LastVaccination == nil || record.RecordDate.After(summary.LastVaccination.RecordDate) {
				summary.LastVaccination = &dto.LastVaccination{
					Title:      record.Title,
					RecordDate: record.RecordDate,
				}
			}
		}
	}

	return summary
}

// buildRecentActivity merges the 5 most recently created medical records with
// appointments created in the last 30 days, newest creation first, capped at
// 10 entries.
func buildRecentActivity(records []entity.MedicalRecord, appointments []entity.Appointment) []dto.DashboardActivityItem {
	sorted := make([]entity.MedicalRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	activity := make([]dto.DashboardActivityItem, 0, len(sorted)+len(appointments))
	for _, record := range sorted {
		activity = append(activity, dto.DashboardActivityItem{
			Type:       "Medical Record",
			Title:      record.Title,
			RecordType: record.RecordType,
			Date:       record.RecordDate,
			CreatedAt:  record.CreatedAt,
		})
	}
	for _, appointment := range appointments {
		title := appointment.AppointmentType
		if appointment.Hospital != nil {
			title = appointment.AppointmentType + " - " + appointment.Hospital.Name
		}
		activity = append(activity, dto.DashboardActivityItem{
			Type:       "Appointment",
			Title:      title,
			RecordType: appointment.AppointmentType,
			Date:       appointment.AppointmentDate,
			CreatedAt:  appointment.CreatedAt,
		})
	}

	sort.Slice(activity, func(i, j int) bool {
		return activity[i].CreatedAt.After(activity[j].CreatedAt)
	})
	if len(activity) > 10 {
		activity = activity[:10]
	}
	return activity
}

func growthMilestones(ageInMonths int) []dto.GrowthMilestone {
	status := func(threshold int) string {
		if ageInMonths >= threshold {
			return "Expected"
		}
		return "Upcoming"
	}

	switch {
	case ageInMonths <= 12:
		return []dto.GrowthMilestone{
			{Milestone: "Sits without support", ExpectedAge: "6-8 months", Status: status(6)},
			{Milestone: "Says first words", ExpectedAge: "10-14 months", Status: status(10)},
			{Milestone: "Walks independently", ExpectedAge: "12-15 months", Status: status(12)},
		}
	case ageInMonths <= 24:
		return []dto.GrowthMilestone{
			{Milestone: "Uses 2-word phrases", ExpectedAge: "18-24 months", Status: status(18)},
			{Milestone: "Runs steadily", ExpectedAge: "18-24 months", Status: status(18)},
			{Milestone: "Shows interest in potty training", ExpectedAge: "20-30 months", Status: status(20)},
		}
	default:
		return []dto.GrowthMilestone{
			{Milestone: "Speaks in sentences", ExpectedAge: "2-3 years", Status: status(24)},
			{Milestone: "Plays with other children", ExpectedAge: "2-4 years", Status: status(24)},
			{Milestone: "Shows independence", ExpectedAge: "2-4 years", Status: status(24)},
		}
	}
}

func ageSpecificTips(ageInMonths int) []dto.DashboardTip {
	switch {
	case ageInMonths <= 12:
		return []dto.DashboardTip{
			{Category: "Nutrition", Tip: "Continue breastfeeding or formula feeding", Priority: "High"},
			{Category: "Safety", Tip: "Baby-proof your home as mobility increases", Priority: "High"},
			{Category: "Development", Tip: "Provide tummy time for muscle development", Priority: "Medium"},
		}
	case ageInMonths <= 24:
		return []dto.DashboardTip{
			{Category: "Nutrition", Tip: "Introduce variety of solid foods", Priority: "High"},
			{Category: "Development", Tip: "Read books together daily", Priority: "High"},
			{Category: "Safety", Tip: "Secure furniture and use safety gates", Priority: "High"},
		}
	default:
		return []dto.DashboardTip{
			{Category: "Nutrition", Tip: "Establish healthy eating routines", Priority: "High"},
			{Category: "Development", Tip: "Encourage social play with peers", Priority: "Medium"},
			{Category: "Education", Tip: "Consider preschool readiness activities", Priority: "Medium"},
		}
	}
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
