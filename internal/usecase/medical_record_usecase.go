package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"famlink-api/internal/converter"
	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
	"famlink-api/internal/domain/repository"
	"famlink-api/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrMedicalRecordNotFound = errors.New("medical record not found")
	ErrInvalidChild          = errors.New("invalid child")
)

const defaultRecordPageSize = 20

type MedicalRecordUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicalRecordResponse, error)
	GetByChild(ctx context.Context, childID uuid.UUID, filter repository.MedicalRecordFilter, page, pageSize int) (*dto.MedicalRecordListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context, childID uuid.UUID) (*dto.MedicalRecordSummaryResponse, error)
	Types() []string
}

type medicalRecordUsecase struct {
	recordRepo repository.MedicalRecordRepository
	childRepo  repository.ChildRepository
	clock      clock.Clock
}

func NewMedicalRecordUsecase(
	recordRepo repository.MedicalRecordRepository,
	childRepo repository.ChildRepository,
	clk clock.Clock,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{recordRepo: recordRepo, childRepo: childRepo, clock: clk}
}

func (u *medicalRecordUsecase) Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	child, err := u.childRepo.FindActiveByID(ctx, req.ChildID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, ErrInvalidChild
	}

	record := &entity.MedicalRecord{
		ChildID:        req.ChildID,
		RecordType:     req.RecordType,
		Title:          req.Title,
		Description:    req.Description,
		DoctorName:     req.DoctorName,
		HospitalName:   req.HospitalName,
		RecordDate:     req.RecordDate,
		Medications:    req.Medications,
		Notes:          req.Notes,
		AttachmentURLs: req.AttachmentURLs,
		IsActive:       true,
	}

	if err := u.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return converter.MedicalRecordToResponse(record, u.clock.Now()), nil
}

func (u *medicalRecordUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindActiveWithChild(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	return converter.MedicalRecordToResponse(record, u.clock.Now()), nil
}

func (u *medicalRecordUsecase) GetByChild(ctx context.Context, childID uuid.UUID, filter repository.MedicalRecordFilter, page, pageSize int) (*dto.MedicalRecordListResponse, error) {
	child, err := u.childRepo.FindActiveByID(ctx, childID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, ErrChildNotFound
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultRecordPageSize
	}
	offset := (page - 1) * pageSize

	records, total, err := u.recordRepo.FindActiveByChild(ctx, childID, filter, offset, pageSize)
	if err != nil {
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records:  converter.MedicalRecordsToResponses(records, u.clock.Now()),
		PageMeta: dto.NewPageMeta(total, page, pageSize),
	}, nil
}

func (u *medicalRecordUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil || !record.IsActive {
		return nil, ErrMedicalRecordNotFound
	}

	if req.RecordType != nil {
		record.RecordType = *req.RecordType
	}
	if req.Title != nil {
		record.Title = *req.Title
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.DoctorName != nil {
		record.DoctorName = *req.DoctorName
	}
	if req.HospitalName != nil {
		record.HospitalName = *req.HospitalName
	}
	if req.RecordDate != nil {
		record.RecordDate = *req.RecordDate
	}
	if req.Medications != nil {
		record.Medications = *req.Medications
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	if req.AttachmentURLs != nil {
		record.AttachmentURLs = *req.AttachmentURLs
	}

	if err := u.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return converter.MedicalRecordToResponse(record, u.clock.Now()), nil
}

func (u *medicalRecordUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := u.recordRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrMedicalRecordNotFound
	}

	return u.recordRepo.SoftDelete(ctx, id)
}

func (u *medicalRecordUsecase) Summary(ctx context.Context, childID uuid.UUID) (*dto.MedicalRecordSummaryResponse, error) {
	child, err := u.childRepo.FindActiveByID(ctx, childID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, ErrChildNotFound
	}

	records, err := u.recordRepo.FindAllActiveByChild(ctx, childID)
	if err != nil {
		return nil, err
	}

	summary := &dto.MedicalRecordSummaryResponse{
		ChildID:       childID,
		TotalRecords:  len(records),
		RecordsByType: groupByType(records),
	}

	sorted := make([]entity.MedicalRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].RecordDate.After(sorted[j].RecordDate)
	})

	recent := sorted
	if len(recent) > 5 {
		recent = recent[:5]
	}
	summary.RecentRecords = converter.MedicalRecordsToResponses(recent, u.clock.Now())

	summary.LastVaccinationDate = latestDateOfType(sorted, entity.RecordTypeVaccination)
	summary.LastCheckupDate = latestDateOfType(sorted, entity.RecordTypeCheckup)

	return summary, nil
}

func (u *medicalRecordUsecase) Types() []string {
	return entity.MedicalRecordTypes
}

// groupByType returns per-type counts ordered by descending count.
func groupByType(records []entity.MedicalRecord) []dto.RecordTypeCount {
	counts := make(map[string]int)
	for _, record := range records {
		counts[record.RecordType]++
	}

	grouped := make([]dto.RecordTypeCount, 0, len(counts))
	for recordType, count := range counts {
		grouped = append(grouped, dto.RecordTypeCount{RecordType: recordType, Count: count})
	}
	sort.Slice(grouped, func(i, j int) bool {
		if grouped[i].Count != grouped[j].Count {
			return grouped[i].Count > grouped[j].Count
		}
		return grouped[i].RecordType < grouped[j].RecordType
	})
	return grouped
}

// latestDateOfType expects records sorted by record date descending.
func latestDateOfType(sorted []entity.MedicalRecord, recordType string) *time.Time {
	for i := range sorted {
		if sorted[i].RecordType == recordType {
			date := sorted[i].RecordDate
			return &date
		}
	}
	return nil
}
