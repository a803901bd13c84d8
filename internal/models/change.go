package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Row - запись коллекции alerts в формате хранилища
type Row struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserAvatar  *string   `json:"user_avatar"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Status      string    `json:"status"`
	Responders  []string  `json:"responders"`
	Severity    *string   `json:"severity"`
	IsEmergency *bool     `json:"is_emergency"`
	IsAnonymous *bool     `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToAlert переводит строку хранилища в доменную модель.
// Отсутствующая важность считается Medium, is_emergency по умолчанию true.
func (r Row) ToAlert() Alert {
	a := Alert{
		ID:          r.ID,
		OwnerID:     r.UserID,
		DisplayName: r.UserName,
		Category:    Category(r.Category),
		Description: r.Description,
		Location:    Coordinates{Lat: r.Lat, Lng: r.Lng},
		CreatedAt:   r.CreatedAt,
		Status:      Status(r.Status),
		Responders:  MergeResponders(nil, r.Responders),
		Severity:    SeverityMedium,
		IsEmergency: true,
	}
	if r.UserAvatar != nil {
		a.DisplayAvatar = *r.UserAvatar
	}
	if r.Severity != nil && Severity(*r.Severity).Valid() {
		a.Severity = Severity(*r.Severity)
	}
	if r.IsEmergency != nil {
		a.IsEmergency = *r.IsEmergency
	}
	if r.IsAnonymous != nil {
		a.IsAnonymous = *r.IsAnonymous
	}
	return a
}

type ChangeType string

const (
	ChangeInserted ChangeType = "INSERT"
	ChangeUpdated  ChangeType = "UPDATE"
	ChangeDeleted  ChangeType = "DELETE"
)

// ChangeEvent - событие потока изменений.
// Для Deleted заполнен только ID (и Alert, если хранилище прислало старую строку).
// Partial означает, что строка не поместилась в уведомление и известен только ID.
type ChangeEvent struct {
	Type    ChangeType
	Alert   Alert
	ID      uuid.UUID
	Partial bool
}

func Inserted(a Alert) ChangeEvent { return ChangeEvent{Type: ChangeInserted, Alert: a, ID: a.ID} }
func Updated(a Alert) ChangeEvent  { return ChangeEvent{Type: ChangeUpdated, Alert: a, ID: a.ID} }
func Deleted(id uuid.UUID) ChangeEvent {
	return ChangeEvent{Type: ChangeDeleted, ID: id}
}

type changePayload struct {
	EventType ChangeType `json:"eventType"`
	New       *Row       `json:"new"`
	Old       *Row       `json:"old"`
	Partial   bool       `json:"partial"`
}

// DecodeChange разбирает уведомление {eventType, new, old}
func DecodeChange(payload []byte) (ChangeEvent, error) {
	var p changePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return ChangeEvent{}, fmt.Errorf("failed to unmarshal change payload: %w", err)
	}

	switch p.EventType {
	case ChangeInserted, ChangeUpdated:
		if p.New == nil {
			return ChangeEvent{}, fmt.Errorf("%s event without new row", p.EventType)
		}
		if p.Partial {
			if p.New.ID == uuid.Nil {
				return ChangeEvent{}, fmt.Errorf("partial %s event without row id", p.EventType)
			}
			return ChangeEvent{Type: p.EventType, ID: p.New.ID, Partial: true}, nil
		}
		a := p.New.ToAlert()
		return ChangeEvent{Type: p.EventType, Alert: a, ID: a.ID}, nil
	case ChangeDeleted:
		if p.Old == nil || p.Old.ID == uuid.Nil {
			return ChangeEvent{}, fmt.Errorf("DELETE event without old row id")
		}
		a := p.Old.ToAlert()
		return ChangeEvent{Type: ChangeDeleted, Alert: a, ID: a.ID}, nil
	}
	return ChangeEvent{}, fmt.Errorf("unknown change event type %q", p.EventType)
}
