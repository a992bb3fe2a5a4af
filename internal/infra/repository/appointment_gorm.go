package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tallerapp/workshop-manager/internal/dates"
	domain "github.com/tallerapp/workshop-manager/internal/domain/appointment"
	"github.com/tallerapp/workshop-manager/internal/models"
	"github.com/tallerapp/workshop-manager/internal/validators"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Vehicle").
		Preload("Jobs").
		First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// Update persists the appointment columns only. The loaded Client,
// Vehicle and Jobs must not travel into the save, or association
// handling would restore a reassigned foreign key from the stale struct.
func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	rng *dates.Range,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Vehicle").
		Preload("Jobs")

	if rng != nil {
		q = q.Where("date >= ? AND date <= ?", rng.From, rng.To)
	}

	var aps []models.Appointment
	if err := q.
		Order("date ASC").
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) Search(
	ctx context.Context,
	filter domain.ReportFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Preload("Client").
		Preload("Vehicle").
		Preload("Jobs")

	if filter.Client != "" {
		like := "%" + strings.ToLower(filter.Client) + "%"
		q = q.Joins("JOIN clients ON clients.id = appointments.client_id").
			Where("LOWER(clients.name) LIKE ? OR clients.phone LIKE ?",
				like, "%"+filter.Client+"%")
	}

	if filter.Plate != "" {
		plateLike := "%" + validators.NormalizePlate(filter.Plate) + "%"
		q = q.Joins("JOIN vehicles ON vehicles.id = appointments.vehicle_id").
			Where("vehicles.plate LIKE ?", plateLike)
	}

	if filter.Range != nil {
		q = q.Where("appointments.date >= ? AND appointments.date <= ?",
			filter.Range.From, filter.Range.To)
	}

	var aps []models.Appointment
	if err := q.
		Order("appointments.date DESC").
		Order("appointments.start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Counting
// --------------------------------------------------

func (r *AppointmentGormRepository) CountByStatus(
	ctx context.Context,
	status domain.Status,
	rng *dates.Range,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("status = ?", string(status))

	if rng != nil {
		q = q.Where("date >= ? AND date <= ?", rng.From, rng.To)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AppointmentGormRepository) CountClients(
	ctx context.Context,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
