package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownExportEntity = errors.New("unknown export entity")
	ErrUnknownExportFormat = errors.New("unknown export format, use csv or xlsx")
)

// Export formats
const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type ExportUsecase interface {
	// Export renders one of doctors, patients, bookings, cancelled_bookings or messages.
	Export(ctx context.Context, entityName, format string) (*ExportFile, error)
}

type exportUsecase struct {
	log           *logrus.Logger
	doctorRepo    repository.DoctorRepository
	patientRepo   repository.PatientRepository
	bookingRepo   repository.BookingRepository
	cancelledRepo repository.CancelledBookingRepository
	messageRepo   repository.ContactMessageRepository
	exportService service.ExportService
}

func NewExportUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	bookingRepo repository.BookingRepository,
	cancelledRepo repository.CancelledBookingRepository,
	messageRepo repository.ContactMessageRepository,
	exportService service.ExportService,
) ExportUsecase {
	return &exportUsecase{
		log:           log,
		doctorRepo:    doctorRepo,
		patientRepo:   patientRepo,
		bookingRepo:   bookingRepo,
		cancelledRepo: cancelledRepo,
		messageRepo:   messageRepo,
		exportService: exportService,
	}
}

func (u *exportUsecase) Export(ctx context.Context, entityName, format string) (*ExportFile, error) {
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatXLSX {
		return nil, ErrUnknownExportFormat
	}

	var (
		table service.Table
		err   error
	)
	switch entityName {
	case "doctors":
		table, err = u.doctorsTable(ctx)
	case "patients":
		table, err = u.patientsTable(ctx)
	case "bookings":
		table, err = u.bookingsTable(ctx)
	case "cancelled_bookings":
		table, err = u.cancelledBookingsTable(ctx)
	case "messages":
		table, err = u.messagesTable(ctx)
	default:
		return nil, ErrUnknownExportEntity
	}
	if err != nil {
		u.log.Warnf("Failed to load %s for export: %+v", entityName, err)
		return nil, err
	}

	file := &ExportFile{Filename: entityName + "." + format}
	if format == ExportFormatXLSX {
		file.ContentType = contentTypeXLSX
		file.Body, err = u.exportService.XLSX(table)
	} else {
		file.ContentType = contentTypeCSV
		file.Body, err = u.exportService.CSV(table)
	}
	if err != nil {
		u.log.Warnf("Failed to render %s export: %+v", entityName, err)
		return nil, err
	}

	u.log.Infof("Exported %d %s rows as %s", len(table.Rows), entityName, format)
	return file, nil
}

func (u *exportUsecase) doctorsTable(ctx context.Context) (service.Table, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, "")
	if err != nil {
		return service.Table{}, err
	}

	table := service.Table{
		Headers: []string{"id", "name", "speciality", "experience", "registration_no", "image_url", "created_at"},
	}
	for _, d := range doctors {
		registrationNo := ""
		if d.RegistrationNo != nil {
			registrationNo = *d.RegistrationNo
		}
		table.Rows = append(table.Rows, []string{
			d.ID.String(), d.Name, d.Speciality, strconv.Itoa(d.Experience), registrationNo, d.ImageURL, timestamp(d.CreatedAt),
		})
	}
	return table, nil
}

func (u *exportUsecase) patientsTable(ctx context.Context) (service.Table, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		return service.Table{}, err
	}

	table := service.Table{
		Headers: []string{"id", "name", "age", "gender", "phone", "email", "created_at"},
	}
	for _, p := range patients {
		table.Rows = append(table.Rows, []string{
			p.ID.String(), p.Name, strconv.Itoa(p.Age), p.Gender, p.Phone, p.Email, timestamp(p.CreatedAt),
		})
	}
	return table, nil
}

func (u *exportUsecase) bookingsTable(ctx context.Context) (service.Table, error) {
	bookings, err := u.bookingRepo.FindAll(ctx, &entity.BookingFilter{})
	if err != nil {
		return service.Table{}, err
	}

	table := service.Table{
		Headers: []string{"id", "patient_name", "patient_phone", "doctor_name", "booking_date", "booking_time", "status", "notes", "created_at"},
	}
	for _, b := range bookings {
		table.Rows = append(table.Rows, []string{
			b.ID.String(), b.Patient.Name, b.Patient.Phone, b.Doctor.Name,
			b.BookingDate.Format(entity.DateLayout), exportClock(b.BookingTime), string(b.Status), b.Notes, timestamp(b.CreatedAt),
		})
	}
	return table, nil
}

func (u *exportUsecase) cancelledBookingsTable(ctx context.Context) (service.Table, error) {
	records, err := u.cancelledRepo.FindAll(ctx)
	if err != nil {
		return service.Table{}, err
	}

	table := service.Table{
		Headers: []string{"id", "booking_id", "patient_name", "doctor_name", "booking_date", "booking_time", "notes", "cancellation_reason", "cancelled_at"},
	}
	for _, c := range records {
		table.Rows = append(table.Rows, []string{
			c.ID.String(), c.BookingID.String(), c.Patient.Name, c.Doctor.Name,
			c.BookingDate.Format(entity.DateLayout), exportClock(c.BookingTime), c.Notes, c.CancellationReason, timestamp(c.CancelledAt),
		})
	}
	return table, nil
}

func (u *exportUsecase) messagesTable(ctx context.Context) (service.Table, error) {
	messages, err := u.messageRepo.FindAll(ctx)
	if err != nil {
		return service.Table{}, err
	}

	table := service.Table{
		Headers: []string{"id", "name", "email", "message", "read", "created_at"},
	}
	for _, m := range messages {
		table.Rows = append(table.Rows, []string{
			m.ID.String(), m.Name, m.Email, m.Message, strconv.FormatBool(m.Read), timestamp(m.CreatedAt),
		})
	}
	return table, nil
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func exportClock(s string) string {
	if normalized, err := entity.NormalizeClock(s); err == nil {
		return normalized
	}
	return s
}
