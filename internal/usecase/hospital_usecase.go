package usecase

import (
	"context"
	"errors"
	"math"

	"famlink-api/internal/converter"
	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
	"famlink-api/internal/domain/repository"
	"famlink-api/pkg/clock"
	"famlink-api/pkg/geo"

	"github.com/google/uuid"
)

var (
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrEmptySearchQuery = errors.New("search query must not be empty")
)

const (
	defaultHospitalPageSize = 20
	defaultRadiusKm         = 50.0
	hospitalSearchCap       = 20
	hospitalSlotCap         = 10
)

// GeoQuery is the optional caller location attached to hospital listings.
type GeoQuery struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

func (g GeoQuery) hasOrigin() bool {
	return g.Latitude != nil && g.Longitude != nil
}

type HospitalUsecase interface {
	List(ctx context.Context, filter repository.HospitalFilter, geoQuery GeoQuery, page, pageSize int) (*dto.HospitalListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.HospitalDetailResponse, error)
	Search(ctx context.Context, query string) (*dto.HospitalSearchResponse, error)
	Specialties() []string
}

type hospitalUsecase struct {
	hospitalRepo    repository.HospitalRepository
	appointmentRepo repository.AppointmentRepository
	clock           clock.Clock
}

func NewHospitalUsecase(
	hospitalRepo repository.HospitalRepository,
	appointmentRepo repository.AppointmentRepository,
	clk clock.Clock,
) HospitalUsecase {
	return &hospitalUsecase{hospitalRepo: hospitalRepo, appointmentRepo: appointmentRepo, clock: clk}
}

func (u *hospitalUsecase) List(ctx context.Context, filter repository.HospitalFilter, geoQuery GeoQuery, page, pageSize int) (*dto.HospitalListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultHospitalPageSize
	}
	offset := (page - 1) * pageSize

	hospitals, total, err := u.hospitalRepo.FindActive(ctx, filter, offset, pageSize)
	if err != nil {
		return nil, err
	}

	responses := converter.HospitalsToResponses(hospitals)

	// TODO: apply the radius filter before pagination; filtering the current
	// page can return fewer rows than pageSize while totalCount still counts
	// out-of-radius hospitals.
	if geoQuery.hasOrigin() {
		radius := defaultRadiusKm
		if geoQuery.RadiusKm != nil {
			radius = *geoQuery.RadiusKm
		}

		filtered := make([]dto.HospitalResponse, 0, len(responses))
		for _, hospital := range responses {
			if hospital.Latitude == nil || hospital.Longitude == nil {
				continue
			}
			distance := geo.HaversineKm(*geoQuery.Latitude, *geoQuery.Longitude, *hospital.Latitude, *hospital.Longitude)
			if distance > radius {
				continue
			}
			rounded := math.Round(distance*100) / 100
			hospital.DistanceKm = &rounded
			filtered = append(filtered, hospital)
		}
		responses = filtered
	}

	return &dto.HospitalListResponse{
		Hospitals: responses,
		PageMeta:  dto.NewPageMeta(total, page, pageSize),
	}, nil
}

func (u *hospitalUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.HospitalDetailResponse, error) {
	hospital, err := u.hospitalRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	upcoming, err := u.appointmentRepo.FindUpcomingByHospital(ctx, id, u.clock.Now(), hospitalSlotCap)
	if err != nil {
		return nil, err
	}

	slots := make([]dto.AppointmentSlot, len(upcoming))
	for i, appointment := range upcoming {
		slots[i] = dto.AppointmentSlot{
			AppointmentDate: appointment.AppointmentDate,
			AppointmentType: appointment.AppointmentType,
			Status:          string(appointment.Status),
		}
	}

	return &dto.HospitalDetailResponse{
		HospitalResponse:     *converter.HospitalToResponse(hospital),
		UpcomingAppointments: slots,
	}, nil
}

func (u *hospitalUsecase) Search(ctx context.Context, query string) (*dto.HospitalSearchResponse, error) {
	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	hospitals, err := u.hospitalRepo.Search(ctx, query, hospitalSearchCap)
	if err != nil {
		return nil, err
	}

	responses := converter.HospitalsToResponses(hospitals)
	return &dto.HospitalSearchResponse{Hospitals: responses, Total: len(responses)}, nil
}

func (u *hospitalUsecase) Specialties() []string {
	return entity.CommonSpecialties
}
