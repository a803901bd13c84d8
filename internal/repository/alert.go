package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/shenikar/rescue_pulse/internal/service"
	"github.com/shenikar/rescue_pulse/pkg/e"
	"github.com/sirupsen/logrus"
)

// ChangeChannel - канал NOTIFY, в который триггер alerts пишет изменения
const ChangeChannel = "alert_changes"

const alertColumns = `id, user_id, user_name, user_avatar, category, description, lat, lng,
	status, responders, severity, is_emergency, is_anonymous, created_at`

// коллекции, которые разрешено проверять через Probe
var probeable = map[string]struct{}{
	"alerts":   {},
	"profiles": {},
}

type AlertRepository struct {
	db         *pgxpool.Pool
	logger     *logrus.Logger
	feedBuffer int
}

func NewAlertRepository(db *pgxpool.Pool, logger *logrus.Logger) service.AlertGateway {
	return &AlertRepository{
		db:         db,
		logger:     logger,
		feedBuffer: 64,
	}
}

// FetchOpenAlerts возвращает все незакрытые запросы, новые первыми
func (r *AlertRepository) FetchOpenAlerts(ctx context.Context) ([]models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE status <> 'resolved'
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, e.WrapError(ctx, "repository.FetchOpenAlerts", err)
	}
	defer rows.Close()

	alerts := make([]models.Alert, 0)
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, e.WrapError(ctx, "repository.FetchOpenAlerts: scan", err)
		}
		alert := row.ToAlert()
		if err := alert.Validate(); err != nil {
			r.logger.WithError(err).WithField("method", "FetchOpenAlerts").Warn("Skipping invalid alert row")
			continue
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, "repository.FetchOpenAlerts: iteration", err)
	}
	return alerts, nil
}

// fetchByID читает одну запись независимо от статуса
func (r *AlertRepository) fetchByID(ctx context.Context, id uuid.UUID) (models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1;`
	row, err := scanRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return models.Alert{}, e.WrapError(ctx, "repository.fetchByID", err)
	}
	return row.ToAlert(), nil
}

// Insert создает запрос и возвращает запись в том виде, в каком ее сохранило хранилище
func (r *AlertRepository) Insert(ctx context.Context, d models.Draft) (models.Alert, error) {
	query := `
		INSERT INTO alerts (user_id, user_name, user_avatar, category, description, lat, lng,
			status, responders, severity, is_emergency, is_anonymous)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'active', '{}', $8, $9, $10)
		RETURNING ` + alertColumns + `;
	`
	row, err := scanRow(r.db.QueryRow(ctx, query,
		d.OwnerID,
		d.DisplayName,
		d.DisplayAvatar,
		d.Category,
		d.Description,
		d.Location.Lat,
		d.Location.Lng,
		d.Severity,
		d.IsEmergency,
		d.IsAnonymous,
	))
	if err != nil {
		return models.Alert{}, e.WrapError(ctx, "repository.Insert", err)
	}
	return row.ToAlert(), nil
}

// UpdateStatus меняет статус и, если передан, список респондентов.
// Закрытый запрос не меняется: ноль строк дает ErrNotFound.
func (r *AlertRepository) UpdateStatus(ctx context.Context, id uuid.UUID, patch models.StatusPatch) error {
	var (
		query string
		args  []any
	)
	if patch.Responders != nil {
		query = `UPDATE alerts SET status = $1, responders = $2 WHERE id = $3 AND status <> 'resolved';`
		args = []any{patch.Status, patch.Responders, id}
	} else {
		query = `UPDATE alerts SET status = $1 WHERE id = $2 AND status <> 'resolved';`
		args = []any{patch.Status, id}
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return e.WrapError(ctx, "repository.UpdateStatus", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("repository.UpdateStatus: alert %s missing or resolved: %w", id, e.ErrNotFound)
	}
	return nil
}

// Delete удаляет запрос. Ноль затронутых строк значит, что политика записи скрыла строку.
func (r *AlertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM alerts WHERE id = $1;`, id)
	if err != nil {
		return e.WrapError(ctx, "repository.Delete", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("repository.Delete: alert %s: %w", id, e.ErrPolicyRejected)
	}
	return nil
}

func (r *AlertRepository) DeleteComments(ctx context.Context, alertID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM comments WHERE alert_id = $1;`, alertID); err != nil {
		return e.WrapError(ctx, "repository.DeleteComments", err)
	}
	return nil
}

// Probe проверяет, что коллекция существует и доступна для чтения
func (r *AlertRepository) Probe(ctx context.Context, collection string) error {
	if _, ok := probeable[collection]; !ok {
		return fmt.Errorf("repository.Probe: unknown collection %q: %w", collection, e.ErrInvalidInput)
	}
	query := fmt.Sprintf("SELECT id FROM %s LIMIT 1;", pgx.Identifier{collection}.Sanitize())
	if _, err := r.db.Exec(ctx, query); err != nil {
		return e.WrapError(ctx, "repository.Probe", err)
	}
	return nil
}

func scanRow(row pgx.Row) (models.Row, error) {
	var out models.Row
	err := row.Scan(
		&out.ID,
		&out.UserID,
		&out.UserName,
		&out.UserAvatar,
		&out.Category,
		&out.Description,
		&out.Lat,
		&out.Lng,
		&out.Status,
		&out.Responders,
		&out.Severity,
		&out.IsEmergency,
		&out.IsAnonymous,
		&out.CreatedAt,
	)
	return out, err
}
