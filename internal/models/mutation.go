package models

import (
	"time"

	"github.com/google/uuid"
)

type MutationKind string

const (
	MutationCreate  MutationKind = "create"
	MutationRespond MutationKind = "respond"
	MutationResolve MutationKind = "resolve"
	MutationDelete  MutationKind = "delete"
)

type MutationState string

const (
	MutationPending    MutationState = "pending"
	MutationConfirmed  MutationState = "confirmed"
	MutationRolledBack MutationState = "rolled_back"
)

// Mutation - локально инициированная запись и её исход относительно хранилища
type Mutation struct {
	ID        uuid.UUID     `json:"id"`
	Kind      MutationKind  `json:"kind"`
	AlertID   uuid.UUID     `json:"alert_id"`
	State     MutationState `json:"state"`
	Error     string        `json:"error,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	SettledAt *time.Time    `json:"settled_at,omitempty"`
}

func NewMutation(kind MutationKind, alertID uuid.UUID) Mutation {
	return Mutation{
		ID:        uuid.New(),
		Kind:      kind,
		AlertID:   alertID,
		State:     MutationPending,
		StartedAt: time.Now().UTC(),
	}
}

func (m *Mutation) Confirm() {
	m.settle(MutationConfirmed, nil)
}

func (m *Mutation) RollBack(err error) {
	m.settle(MutationRolledBack, err)
}

func (m *Mutation) settle(state MutationState, err error) {
	now := time.Now().UTC()
	m.State = state
	m.SettledAt = &now
	if err != nil {
		m.Error = err.Error()
	}
}
