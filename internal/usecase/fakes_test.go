package usecase

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// store is an in-memory stand-in for the database. The fake transactor
// snapshots it before each transaction and restores it on error.
type store struct {
	mu         sync.Mutex
	patterns   map[uuid.UUID]entity.RecurrencePattern
	slots      map[uuid.UUID]entity.TimeSlot
	exceptions map[exceptionKey]entity.RecurrenceException
	audits     []entity.AuditLog

	failPatternCreate error
	failSlotCreate    error
	failSlotUpdate    error
}

type exceptionKey struct {
	recurrenceID uuid.UUID
	date         string
}

func newStore() *store {
	return &store{
		patterns:   map[uuid.UUID]entity.RecurrencePattern{},
		slots:      map[uuid.UUID]entity.TimeSlot{},
		exceptions: map[exceptionKey]entity.RecurrenceException{},
	}
}

type snapshot struct {
	patterns   map[uuid.UUID]entity.RecurrencePattern
	slots      map[uuid.UUID]entity.TimeSlot
	exceptions map[exceptionKey]entity.RecurrenceException
	audits     []entity.AuditLog
}

func (s *store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{
		patterns:   make(map[uuid.UUID]entity.RecurrencePattern, len(s.patterns)),
		slots:      make(map[uuid.UUID]entity.TimeSlot, len(s.slots)),
		exceptions: make(map[exceptionKey]entity.RecurrenceException, len(s.exceptions)),
		audits:     append([]entity.AuditLog(nil), s.audits...),
	}
	for k, v := range s.patterns {
		snap.patterns[k] = v
	}
	for k, v := range s.slots {
		snap.slots[k] = v
	}
	for k, v := range s.exceptions {
		snap.exceptions[k] = v
	}
	return snap
}

func (s *store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patterns = snap.patterns
	s.slots = snap.slots
	s.exceptions = snap.exceptions
	s.audits = snap.audits
}

func (s *store) slotList() []entity.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.TimeSlot, 0, len(s.slots))
	for _, slot := range s.slots {
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// transactor

type fakeTransactor struct {
	store *store
}

func (t *fakeTransactor) Conn(ctx context.Context) *gorm.DB {
	return nil
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	snap := t.store.snapshot()
	if err := fn(nil); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}

// recurrence patterns

type fakePatternRepo struct {
	store *store
}

func (r *fakePatternRepo) Create(db *gorm.DB, pattern *entity.RecurrencePattern) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failPatternCreate != nil {
		return r.store.failPatternCreate
	}
	if pattern.ID == uuid.Nil {
		pattern.ID = uuid.New()
	}
	pattern.CreatedAt = time.Now()
	pattern.UpdatedAt = pattern.CreatedAt
	r.store.patterns[pattern.ID] = *pattern
	return nil
}

func (r *fakePatternRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.RecurrencePattern, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	pattern, ok := r.store.patterns[id]
	if !ok {
		return nil, nil
	}
	return &pattern, nil
}

func (r *fakePatternRepo) FindByCoachID(db *gorm.DB, coachID uuid.UUID) ([]entity.RecurrencePattern, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.RecurrencePattern
	for _, p := range r.store.patterns {
		if p.CoachID == coachID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (r *fakePatternRepo) FindActiveIDs(db *gorm.DB) ([]uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var ids []uuid.UUID
	for id, p := range r.store.patterns {
		if p.IsActive {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}

// time slots

type fakeSlotRepo struct {
	store *store
}

func (r *fakeSlotRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.TimeSlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	slot, ok := r.store.slots[id]
	if !ok {
		return nil, nil
	}
	return &slot, nil
}

func (r *fakeSlotRepo) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.TimeSlot, error) {
	return r.FindByID(db, id)
}

func (r *fakeSlotRepo) FindByFilter(db *gorm.DB, filter *entity.SlotFilter) ([]entity.TimeSlot, error) {
	var out []entity.TimeSlot
	for _, slot := range r.store.slotList() {
		if filter.CoachID != uuid.Nil && slot.CoachID != filter.CoachID {
			continue
		}
		if !filter.StartDate.IsZero() && slot.Date.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && slot.Date.After(filter.EndDate) {
			continue
		}
		out = append(out, slot)
	}
	return out, nil
}

func (r *fakeSlotRepo) FindDatesByRecurrence(db *gorm.DB, recurrenceID uuid.UUID, from, to time.Time) ([]time.Time, error) {
	var dates []time.Time
	for _, slot := range r.store.slotList() {
		if slot.RecurrenceID == nil || *slot.RecurrenceID != recurrenceID {
			continue
		}
		if slot.Date.Before(from) || slot.Date.After(to) {
			continue
		}
		dates = append(dates, slot.Date)
	}
	return dates, nil
}

func (r *fakeSlotRepo) BulkCreate(db *gorm.DB, slots []entity.TimeSlot) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var inserted int64
	for _, slot := range slots {
		if slot.RecurrenceID != nil && r.hasRecurrenceDate(*slot.RecurrenceID, slot.Date) {
			continue
		}
		r.store.slots[slot.ID] = slot
		inserted++
	}
	return inserted, nil
}

func (r *fakeSlotRepo) hasRecurrenceDate(recurrenceID uuid.UUID, date time.Time) bool {
	for _, existing := range r.store.slots {
		if existing.RecurrenceID != nil && *existing.RecurrenceID == recurrenceID && dateKey(existing.Date) == dateKey(date) {
			return true
		}
	}
	return false
}

func (r *fakeSlotRepo) Create(db *gorm.DB, slot *entity.TimeSlot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failSlotCreate != nil {
		return r.store.failSlotCreate
	}
	slot.CreatedAt = time.Now()
	slot.UpdatedAt = slot.CreatedAt
	r.store.slots[slot.ID] = *slot
	return nil
}

func (r *fakeSlotRepo) Update(db *gorm.DB, slot *entity.TimeSlot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failSlotUpdate != nil {
		return r.store.failSlotUpdate
	}
	slot.UpdatedAt = time.Now()
	r.store.slots[slot.ID] = *slot
	return nil
}

func (r *fakeSlotRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.slots[id]; !ok {
		return 0, nil
	}
	delete(r.store.slots, id)
	return 1, nil
}

// recurrence exceptions

type fakeExceptionRepo struct {
	store *store
}

func (r *fakeExceptionRepo) Create(db *gorm.DB, exception *entity.RecurrenceException) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := exceptionKey{exception.RecurrenceID, dateKey(exception.Date)}
	if _, ok := r.store.exceptions[key]; !ok {
		r.store.exceptions[key] = *exception
	}
	return nil
}

func (r *fakeExceptionRepo) FindDates(db *gorm.DB, recurrenceID uuid.UUID, from, to time.Time) ([]time.Time, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var dates []time.Time
	for _, e := range r.store.exceptions {
		if e.RecurrenceID == recurrenceID && !e.Date.Before(from) && !e.Date.After(to) {
			dates = append(dates, e.Date)
		}
	}
	return dates, nil
}

// audit logs

type fakeAuditRepo struct {
	store *store
}

func (r *fakeAuditRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	log.ID = int64(len(r.store.audits) + 1)
	log.CreatedAt = time.Now()
	r.store.audits = append(r.store.audits, *log)
	return nil
}

func (r *fakeAuditRepo) FindAll(db *gorm.DB, action string, limit int) ([]entity.AuditLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.AuditLog
	for i := len(r.store.audits) - 1; i >= 0; i-- {
		if action != "" && r.store.audits[i].Action != action {
			continue
		}
		out = append(out, r.store.audits[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeAuditRepo) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, l := range r.store.audits {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, nil
}

// locker and publisher

type fakeLocker struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (l *fakeLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	l.keys = append(l.keys, key)
	return func() {}, nil
}

type publishedEvent struct {
	key   string
	event any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) PublishJSON(ctx context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{key: key, event: v})
	return nil
}

// harness wires every usecase against one store.
type harness struct {
	store     *store
	locker    *fakeLocker
	publisher *fakePublisher

	generation SlotGenerationUsecase
	removal    SegmentRemovalUsecase
	patterns   RecurrencePatternUsecase
	slots      TimeSlotUsecase
	auditLogs  AuditLogUsecase
}

func newHarness() *harness {
	log := logrus.New()
	log.SetOutput(io.Discard)

	s := newStore()
	tx := &fakeTransactor{store: s}
	patternRepo := &fakePatternRepo{store: s}
	slotRepo := &fakeSlotRepo{store: s}
	exceptionRepo := &fakeExceptionRepo{store: s}
	auditRepo := &fakeAuditRepo{store: s}
	auditService := service.NewAuditService(log, auditRepo)
	locker := &fakeLocker{}
	publisher := &fakePublisher{}

	return &harness{
		store:      s,
		locker:     locker,
		publisher:  publisher,
		generation: NewSlotGenerationUsecase(tx, log, patternRepo, slotRepo, exceptionRepo, auditService, locker, publisher),
		removal:    NewSegmentRemovalUsecase(tx, log, slotRepo, exceptionRepo, auditService, publisher),
		patterns:   NewRecurrencePatternUsecase(tx, log, patternRepo, auditService),
		slots:      NewTimeSlotUsecase(tx, log, slotRepo),
		auditLogs:  NewAuditLogUsecase(tx, log, auditRepo),
	}
}

func (h *harness) addPattern(p entity.RecurrencePattern) entity.RecurrencePattern {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	h.store.patterns[p.ID] = p
	return p
}

func (h *harness) addSlot(s entity.TimeSlot) entity.TimeSlot {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	h.store.slots[s.ID] = s
	return s
}

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
