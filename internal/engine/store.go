// Package engine держит канонический набор открытых запросов.
// Все записи в набор проходят через Store: он единственная точка изменения
// и для потока событий, и для оптимистичных операций.
package engine

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrAlertNotFound = errors.New("alert not found in canonical set")
	ErrAlertClosed   = errors.New("alert is resolved")
)

// Store - канонический упорядоченный набор (новые первыми)
type Store struct {
	mu sync.RWMutex

	userID  string
	alerts  []models.Alert
	index   map[uuid.UUID]int
	removed map[uuid.UUID]struct{}
	active  *uuid.UUID
	version uint64

	subs   map[int]chan struct{}
	nextID int

	// журнал событий, пока идут загрузки из хранилища
	loads   map[uint64]uint64
	loadSeq uint64
	seq     uint64
	journal []journalEntry

	logger *logrus.Logger
}

func NewStore(userID string, logger *logrus.Logger) *Store {
	return &Store{
		userID:  userID,
		index:   make(map[uuid.UUID]int),
		removed: make(map[uuid.UUID]struct{}),
		subs:    make(map[int]chan struct{}),
		loads:   make(map[uint64]uint64),
		logger:  logger,
	}
}

type journalEntry struct {
	seq uint64
	ev  models.ChangeEvent
}

// LoadToken отмечает начатую выборку из хранилища
type LoadToken struct {
	id   uint64
	from uint64
}

// Load заменяет набор целиком, сохраняя порядок хранилища
func (s *Store) Load(alerts []models.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(alerts)
	s.changed()
}

// BeginLoad вызывается до запроса к хранилищу. События, пришедшие до FinishLoad,
// переигрываются поверх загруженного набора.
func (s *Store) BeginLoad() LoadToken {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadSeq++
	tok := LoadToken{id: s.loadSeq, from: s.seq}
	s.loads[tok.id] = tok.from
	return tok
}

// FinishLoad заменяет набор результатом выборки и переигрывает события, примененные после BeginLoad.
// Загрузка, снятая через Reset, отбрасывается: возвращается false.
func (s *Store) FinishLoad(tok LoadToken, alerts []models.Alert) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.loads[tok.id]; !ok {
		return false
	}

	var replay []models.ChangeEvent
	for _, j := range s.journal {
		if j.seq >= tok.from {
			replay = append(replay, j.ev)
		}
	}
	s.endLoadLocked(tok)

	s.loadLocked(alerts)
	for _, ev := range replay {
		s.applyLocked(ev)
		if ev.Type == models.ChangeDeleted {
			s.removed[ev.ID] = struct{}{}
		}
	}
	s.changed()
	return true
}

// AbortLoad снимает загрузку, завершившуюся ошибкой
func (s *Store) AbortLoad(tok LoadToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.endLoadLocked(tok)
}

func (s *Store) loadLocked(alerts []models.Alert) {
	s.alerts = make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Status == models.StatusResolved {
			continue
		}
		s.alerts = append(s.alerts, a.Clone())
	}
	s.reindex()
	s.removed = make(map[uuid.UUID]struct{})

	s.active = nil
	for _, a := range s.alerts {
		if s.isOwnActiveEmergency(a) {
			id := a.ID
			s.active = &id
			break
		}
	}

	s.logger.WithFields(logrus.Fields{
		"component": "engine",
		"method":    "Load",
		"count":     len(s.alerts),
	}).Debug("Canonical set replaced")
}

// Apply применяет одно событие потока изменений в порядке доставки
func (s *Store) Apply(ev models.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(ev)
	if s.applyLocked(ev) {
		s.changed()
	}
}

func (s *Store) applyLocked(ev models.ChangeEvent) bool {
	log := s.logger.WithFields(logrus.Fields{
		"component": "engine",
		"method":    "Apply",
		"event":     ev.Type,
		"alert_id":  ev.ID,
	})

	if ev.Partial && ev.Type != models.ChangeDeleted {
		log.Warn("Partial change event dropped")
		return false
	}

	switch ev.Type {
	case models.ChangeInserted:
		if !s.insertLocked(ev.Alert) {
			log.Debug("Insert ignored")
			return false
		}
		if s.active == nil && s.isOwnActiveEmergency(ev.Alert) {
			id := ev.Alert.ID
			s.active = &id
		}
	case models.ChangeUpdated:
		if !s.updateLocked(ev.Alert) {
			log.Debug("Update dropped")
			return false
		}
	case models.ChangeDeleted:
		if _, ok := s.removeLocked(ev.ID); !ok {
			return false
		}
	default:
		log.Warn("Unknown change event type")
		return false
	}
	return true
}

// Insert добавляет подтвержденную хранилищем запись в начало набора.
// Возвращает false, если запись уже есть или была удалена.
func (s *Store) Insert(a models.Alert) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(models.Inserted(a))
	if !s.insertLocked(a) {
		return false
	}
	s.changed()
	return true
}

// Remove убирает запись из набора и запоминает её id, чтобы эхо не воскресило её
func (s *Store) Remove(id uuid.UUID) (models.Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(models.Deleted(id))
	a, ok := s.removeLocked(id)
	if ok {
		s.changed()
	}
	return a, ok
}

// Respond добавляет userID в респонденты и переводит запись в responding
func (s *Store) Respond(id uuid.UUID, userID string) (models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return models.Alert{}, ErrAlertNotFound
	}
	a := &s.alerts[i]
	if !a.Status.CanTransition(models.StatusResponding) {
		return models.Alert{}, ErrAlertClosed
	}
	a.Responders = models.MergeResponders(a.Responders, []string{userID})
	a.Status = models.StatusResponding
	s.changed()
	return a.Clone(), nil
}

// SetActiveBroadcast отмечает запись как активную трансляцию локального пользователя
func (s *Store) SetActiveBroadcast(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok || s.alerts[i].OwnerID != s.userID || !s.alerts[i].IsEmergency {
		return false
	}
	s.active = &id
	s.changed()
	return true
}

// Reset очищает состояние при завершении сессии
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = nil
	s.index = make(map[uuid.UUID]int)
	s.removed = make(map[uuid.UUID]struct{})
	s.active = nil
	s.loads = make(map[uint64]uint64)
	s.journal = nil
	s.changed()
}

// record пишет событие в журнал, если идет хотя бы одна загрузка
func (s *Store) record(ev models.ChangeEvent) {
	if len(s.loads) > 0 {
		s.journal = append(s.journal, journalEntry{seq: s.seq, ev: ev})
	}
	s.seq++
}

// endLoadLocked снимает загрузку и отбрасывает записи журнала, не нужные оставшимся
func (s *Store) endLoadLocked(tok LoadToken) {
	delete(s.loads, tok.id)
	if len(s.loads) == 0 {
		s.journal = nil
		return
	}
	oldest := s.seq
	for _, from := range s.loads {
		if from < oldest {
			oldest = from
		}
	}
	i := 0
	for i < len(s.journal) && s.journal[i].seq < oldest {
		i++
	}
	s.journal = s.journal[i:]
}

func (s *Store) insertLocked(a models.Alert) bool {
	if _, ok := s.index[a.ID]; ok {
		return false
	}
	if _, ok := s.removed[a.ID]; ok {
		return false
	}
	if a.Status == models.StatusResolved {
		return false
	}
	s.alerts = append([]models.Alert{a.Clone()}, s.alerts...)
	s.reindex()
	return true
}

// updateLocked меняет только изменяемые поля; resolved удаляет запись
func (s *Store) updateLocked(a models.Alert) bool {
	if a.Status == models.StatusResolved {
		_, ok := s.removeLocked(a.ID)
		return ok
	}
	i, ok := s.index[a.ID]
	if !ok {
		return false
	}
	cur := &s.alerts[i]
	cur.Status = a.Status
	cur.Responders = models.MergeResponders(cur.Responders, a.Responders)
	cur.Severity = a.Severity
	cur.IsEmergency = a.IsEmergency
	cur.IsAnonymous = a.IsAnonymous
	cur.DisplayName = a.DisplayName
	cur.DisplayAvatar = a.DisplayAvatar
	return true
}

func (s *Store) removeLocked(id uuid.UUID) (models.Alert, bool) {
	i, ok := s.index[id]
	if !ok {
		return models.Alert{}, false
	}
	a := s.alerts[i]
	s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
	s.reindex()
	s.removed[id] = struct{}{}

	if s.active != nil && *s.active == id {
		s.active = nil
	}
	return a, true
}

func (s *Store) reindex() {
	s.index = make(map[uuid.UUID]int, len(s.alerts))
	for i, a := range s.alerts {
		s.index[a.ID] = i
	}
}

func (s *Store) isOwnActiveEmergency(a models.Alert) bool {
	return a.OwnerID == s.userID && a.IsEmergency && a.Status == models.StatusActive
}
