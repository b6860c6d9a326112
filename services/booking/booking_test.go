package booking

import (
	"errors"
	"sync"
	"testing"
	"time"

	"servana/models"
	"servana/schedule"
)

func approvedServicer(id string) *models.Servicer {
	return &models.Servicer{
		ID:           id,
		Name:         "Pat the Plumber",
		Email:        "pat@example.com",
		PasswordHash: "hash",
		Speciality:   "Plumbing",
		Available:    true,
		Status:       models.ServicerApproved,
		WorkingHours: schedule.DefaultWorkingHours(),
		SlotsBooked:  schedule.SlotLedger{},
	}
}

func customer(id string) *models.User {
	return &models.User{
		ID:           id,
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "hash",
		Phone:        "0700000000",
	}
}

// Monday 2026-03-02 08:00 local.
func mondayMorning() time.Time {
	return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
}

func newBookingService(servicers *fakeServicerRepo, appointments *fakeAppointmentRepo, users *fakeUserRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Servicers:    servicers,
		Appointments: appointments,
		Users:        users,
		Now:          mondayMorning,
	}
}

func bookingRequest() BookingRequest {
	return BookingRequest{
		UserID:      "user-1",
		ServicerID:  "ser-1",
		SlotDate:    schedule.DateKey(mondayMorning()),
		SlotTime:    "09:00 AM",
		Description: "leaking tap",
		Address:     models.Address{Line1: "12 Main St"},
	}
}

func TestBookReservesSlotAndCreatesAppointment(t *testing.T) {
	servicers := newFakeServicerRepo(approvedServicer("ser-1"))
	appointments := newFakeAppointmentRepo()
	svc := newBookingService(servicers, appointments, newFakeUserRepo(customer("user-1")))

	appt, err := svc.Book(bookingRequest())
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if appt.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %q", appt.Status)
	}
	if appt.Cancelled {
		t.Fatalf("new appointment must not be cancelled")
	}
	if !servicers.ledger("ser-1").IsBooked(appt.SlotDate, appt.SlotTime) {
		t.Fatalf("ledger does not hold the booked slot")
	}

	stored, _ := appointments.GetByID(appt.ID)
	if stored == nil {
		t.Fatalf("appointment not persisted")
	}
	if stored.ServiceType != "Plumbing" {
		t.Fatalf("expected service type from servicer speciality, got %q", stored.ServiceType)
	}
}

func TestBookSnapshotsExcludeSecrets(t *testing.T) {
	servicers := newFakeServicerRepo(approvedServicer("ser-1"))
	svc := newBookingService(servicers, newFakeAppointmentRepo(), newFakeUserRepo(customer("user-1")))

	appt, err := svc.Book(bookingRequest())
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if appt.UserData.PasswordHash != "" || appt.ServicerData.PasswordHash != "" {
		t.Fatalf("snapshots must not carry password hashes")
	}
	if appt.ServicerData.SlotsBooked != nil {
		t.Fatalf("servicer snapshot must not carry the slot ledger")
	}
}

func TestBookSnapshotsStayFrozen(t *testing.T) {
	servicers := newFakeServicerRepo(approvedServicer("ser-1"))
	users := newFakeUserRepo(customer("user-1"))
	svc := newBookingService(servicers, newFakeAppointmentRepo(), users)

	appt, err := svc.Book(bookingRequest())
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}

	// A later profile edit must not change the stored snapshot: old bookings
	// keep the data they were made against.
	u, _ := users.GetByID("user-1")
	u.Name = "Ada Renamed"
	if err := users.Update(u); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if appt.UserData.Name != "Ada" {
		t.Fatalf("snapshot changed after profile edit: %q", appt.UserData.Name)
	}
}

func TestBookSecondRequestConflicts(t *testing.T) {
	servicers := newFakeServicerRepo(approvedServicer("ser-1"))
	svc := newBookingService(servicers, newFakeAppointmentRepo(), newFakeUserRepo(customer("user-1"), customer("user-2")))

	if _, err := svc.Book(bookingRequest()); err != nil {
		t.Fatalf("first Book error: %v", err)
	}

	second := bookingRequest()
	second.UserID = "user-2"
	_, err := svc.Book(second)
	if !errors.Is(err, ErrSlotConflict) {
		t.Fatalf("expected ErrSlotConflict, got %v", err)
	}
}

func TestBookConcurrentSingleWinner(t *testing.T) {
	servicers := newFakeServicerRepo(approvedServicer("ser-1"))
	svc := newBookingService(servicers, newFakeAppointmentRepo(), newFakeUserRepo(customer("user-1")))

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(bookingRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins)
	}
	if conflicts != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflicts)
	}
}

func TestBookServicerUnavailable(t *testing.T) {
	off := approvedServicer("ser-1")
	off.Available = false
	svc := newBookingService(newFakeServicerRepo(off), newFakeAppointmentRepo(), newFakeUserRepo(customer("user-1")))

	_, err := svc.Book(bookingRequest())
	if !errors.Is(err, ErrServicerUnavailable) {
		t.Fatalf("expected ErrServicerUnavailable, got %v", err)
	}
}

func TestBookUnapprovedServicerUnavailable(t *testing.T) {
	pending := approvedServicer("ser-1")
	pending.Status = models.ServicerPending
	svc := newBookingService(newFakeServicerRepo(pending), newFakeAppointmentRepo(), newFakeUserRepo(customer("user-1")))

	_, err := svc.Book(bookingRequest())
	if !errors.Is(err, ErrServicerUnavailable) {
		t.Fatalf("expected ErrServicerUnavailable, got %v", err)
	}
}

func TestBookValidation(t *testing.T) {
	svc := newBookingService(newFakeServicerRepo(approvedServicer("ser-1")), newFakeAppointmentRepo(), newFakeUserRepo(customer("user-1")))

	missingAddress := bookingRequest()
	missingAddress.Address = models.Address{}
	if _, err := svc.Book(missingAddress); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing address, got %v", err)
	}

	missingTime := bookingRequest()
	missingTime.SlotTime = ""
	if _, err := svc.Book(missingTime); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing time, got %v", err)
	}
}

func TestBookUnknownServicerAndUser(t *testing.T) {
	svc := newBookingService(newFakeServicerRepo(approvedServicer("ser-1")), newFakeAppointmentRepo(), newFakeUserRepo())

	req := bookingRequest()
	req.ServicerID = "nobody"
	if _, err := svc.Book(req); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing servicer, got %v", err)
	}

	if _, err := svc.Book(bookingRequest()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing user, got %v", err)
	}
}

func TestBookReleasesSlotWhenInsertFails(t *testing.T) {
	servicers := newFakeServicerRepo(approvedServicer("ser-1"))
	appointments := newFakeAppointmentRepo()
	appointments.failCreate = true
	svc := newBookingService(servicers, appointments, newFakeUserRepo(customer("user-1")))

	req := bookingRequest()
	if _, err := svc.Book(req); err == nil {
		t.Fatalf("expected insert failure")
	}
	if servicers.ledger("ser-1").IsBooked(req.SlotDate, req.SlotTime) {
		t.Fatalf("slot still held after failed insert")
	}
}

func TestAvailabilityBoard(t *testing.T) {
	servicers := newFakeServicerRepo(approvedServicer("ser-1"))
	svc := newBookingService(servicers, newFakeAppointmentRepo(), newFakeUserRepo(customer("user-1")))

	board, err := svc.Availability("ser-1")
	if err != nil {
		t.Fatalf("Availability error: %v", err)
	}
	if len(board) != 7 {
		t.Fatalf("expected 7 day lists, got %d", len(board))
	}
	if board[0][0].Time != "09:00 AM" {
		t.Fatalf("expected Monday to open at 09:00 AM, got %q", board[0][0].Time)
	}

	if _, err := svc.Availability("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAvailabilityReflectsBookings(t *testing.T) {
	servicers := newFakeServicerRepo(approvedServicer("ser-1"))
	svc := newBookingService(servicers, newFakeAppointmentRepo(), newFakeUserRepo(customer("user-1")))

	if _, err := svc.Book(bookingRequest()); err != nil {
		t.Fatalf("Book error: %v", err)
	}

	board, err := svc.Availability("ser-1")
	if err != nil {
		t.Fatalf("Availability error: %v", err)
	}
	for _, s := range board[0] {
		if s.Time == "09:00 AM" {
			t.Fatalf("booked slot still offered")
		}
	}
}
