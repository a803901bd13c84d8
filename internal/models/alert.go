package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryMedical    Category = "Medical"
	CategoryFire       Category = "Fire"
	CategorySecurity   Category = "Security"
	CategoryMechanical Category = "Mechanical"
	CategoryOther      Category = "Other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMedical, CategoryFire, CategorySecurity, CategoryMechanical, CategoryOther:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

type Status string

const (
	StatusActive     Status = "active"
	StatusResponding Status = "responding"
	StatusResolved   Status = "resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusResponding, StatusResolved:
		return true
	}
	return false
}

// CanTransition сообщает, допустим ли переход статуса. resolved терминален.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusActive:
		return to == StatusResponding || to == StatusResolved
	case StatusResponding:
		return to == StatusResponding || to == StatusResolved
	}
	return false
}

// Анонимная подмена отображаемой личности
const (
	AnonymousName   = "Anonymous"
	AnonymousAvatar = "https://ui-avatars.com/api/?name=Anonymous&background=64748b&color=fff"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Alert - запрос о помощи, один элемент канонического набора
type Alert struct {
	ID            uuid.UUID   `json:"id"`
	OwnerID       string      `json:"owner_id"`
	DisplayName   string      `json:"display_name"`
	DisplayAvatar string      `json:"display_avatar"`
	Category      Category    `json:"category"`
	Description   string      `json:"description"`
	Location      Coordinates `json:"location"`
	CreatedAt     time.Time   `json:"created_at"`
	Status        Status      `json:"status"`
	Responders    []string    `json:"responders"`
	Severity      Severity    `json:"severity"`
	IsEmergency   bool        `json:"is_emergency"`
	IsAnonymous   bool        `json:"is_anonymous"`
}

// Clone возвращает глубокую копию, чтобы снимки не разделяли слайс responders
func (a Alert) Clone() Alert {
	out := a
	out.Responders = make([]string, len(a.Responders))
	copy(out.Responders, a.Responders)
	return out
}

func (a Alert) HasResponder(userID string) bool {
	for _, r := range a.Responders {
		if r == userID {
			return true
		}
	}
	return false
}

// Validate проверяет инварианты одной записи
func (a Alert) Validate() error {
	if a.ID == uuid.Nil {
		return fmt.Errorf("alert id is empty")
	}
	if a.OwnerID == "" {
		return fmt.Errorf("alert %s: owner id is empty", a.ID)
	}
	if !a.Category.Valid() {
		return fmt.Errorf("alert %s: unknown category %q", a.ID, a.Category)
	}
	if !a.Severity.Valid() {
		return fmt.Errorf("alert %s: unknown severity %q", a.ID, a.Severity)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("alert %s: unknown status %q", a.ID, a.Status)
	}
	if !a.Location.Valid() {
		return fmt.Errorf("alert %s: coordinates out of range", a.ID)
	}
	seen := make(map[string]struct{}, len(a.Responders))
	for _, r := range a.Responders {
		if _, ok := seen[r]; ok {
			return fmt.Errorf("alert %s: duplicate responder %s", a.ID, r)
		}
		seen[r] = struct{}{}
	}
	return nil
}

// MergeResponders добавляет новых респондентов в конец, сохраняя порядок и без дублей.
// Набор никогда не уменьшается.
func MergeResponders(existing, incoming []string) []string {
	out := make([]string, 0, len(existing)+len(incoming))
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	for _, list := range [][]string{existing, incoming} {
		for _, r := range list {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}

// Draft - то, что пользователь отправляет при создании запроса
type Draft struct {
	OwnerID       string
	DisplayName   string
	DisplayAvatar string
	Category      Category
	Description   string
	Location      Coordinates
	Severity      Severity
	IsEmergency   bool
	IsAnonymous   bool
}

// NewDraft выбирает отображаемую личность в зависимости от анонимности
func NewDraft(user User, category Category, description string, severity Severity, isEmergency, isAnonymous bool) Draft {
	d := Draft{
		OwnerID:       user.ID,
		DisplayName:   user.Name,
		DisplayAvatar: user.Avatar,
		Category:      category,
		Description:   description,
		Severity:      severity,
		IsEmergency:   isEmergency,
		IsAnonymous:   isAnonymous,
	}
	if isAnonymous {
		d.DisplayName = AnonymousName
		d.DisplayAvatar = AnonymousAvatar
	}
	if d.Severity == "" {
		d.Severity = SeverityMedium
		if isEmergency {
			d.Severity = SeverityHigh
		}
	}
	return d
}

// StatusPatch - изменяемая часть записи при обновлении статуса
type StatusPatch struct {
	Status     Status
	Responders []string
}

// User - локальная личность сессии
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
