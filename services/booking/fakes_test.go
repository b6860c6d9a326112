package booking

import (
	"errors"
	"sync"

	servicerRepo "servana/database/repository/servicer"
	"servana/models"
	"servana/schedule"
)

// fakeServicerRepo keeps servicers in memory and guards the ledger with a
// mutex so BookSlot has the same check-and-reserve atomicity as the Mongo
// conditional update.
type fakeServicerRepo struct {
	servicerRepo.ServicerRepository

	mu        sync.Mutex
	servicers map[string]*models.Servicer
}

func newFakeServicerRepo(servicers ...*models.Servicer) *fakeServicerRepo {
	repo := &fakeServicerRepo{servicers: map[string]*models.Servicer{}}
	for _, s := range servicers {
		if s.SlotsBooked == nil {
			s.SlotsBooked = schedule.SlotLedger{}
		}
		repo.servicers[s.ID] = s
	}
	return repo
}

func (f *fakeServicerRepo) GetByID(id string) (*models.Servicer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.servicers[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeServicerRepo) BookSlot(id, dateKey, timeLabel string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.servicers[id]
	if !ok {
		return errors.New("servicer not found")
	}
	if s.SlotsBooked.IsBooked(dateKey, timeLabel) {
		return servicerRepo.ErrSlotTaken
	}
	s.SlotsBooked.Book(dateKey, timeLabel)
	return nil
}

func (f *fakeServicerRepo) ReleaseSlot(id, dateKey, timeLabel string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.servicers[id]
	if !ok {
		return errors.New("servicer not found")
	}
	s.SlotsBooked.Release(dateKey, timeLabel)
	return nil
}

func (f *fakeServicerRepo) ledger(id string) schedule.SlotLedger {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.servicers[id].SlotsBooked
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	failCreate   bool
}

func newFakeAppointmentRepo(appointments ...*models.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{appointments: map[string]*models.Appointment{}}
	for _, a := range appointments {
		repo.appointments[a.ID] = a
	}
	return repo
}

func (f *fakeAppointmentRepo) Create(a *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return errors.New("insert failed")
	}
	copied := *a
	f.appointments[a.ID] = &copied
	return nil
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointmentRepo) SetStatus(id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appointments[id]
	if !ok {
		return errors.New("appointment not found")
	}
	a.Status = status
	return nil
}

func (f *fakeAppointmentRepo) SetCancelled(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appointments[id]
	if !ok {
		return errors.New("appointment not found")
	}
	a.Cancelled = true
	return nil
}

func (f *fakeAppointmentRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.appointments[id]; !ok {
		return errors.New("appointment not found")
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeAppointmentRepo) ListByUser(userID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByServicer(servicerID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.ServicerID == servicerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListAll() ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) DeleteByUser(userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, a := range f.appointments {
		if a.UserID == userID {
			delete(f.appointments, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeAppointmentRepo) CountByServicer(servicerID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.appointments {
		if a.ServicerID == servicerID {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) ListAll() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}
