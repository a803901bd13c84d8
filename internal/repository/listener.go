package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/shenikar/rescue_pulse/internal/stream"
	"github.com/shenikar/rescue_pulse/pkg/e"
	"github.com/sirupsen/logrus"
)

const unlistenTimeout = 2 * time.Second

// Subscribe занимает отдельное соединение пула и слушает канал изменений.
// Поток завершается ошибкой, если соединение потеряно.
func (r *AlertRepository) Subscribe(ctx context.Context) (*stream.Feed, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, "repository.Subscribe: acquire", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+ChangeChannel); err != nil {
		conn.Release()
		return nil, e.WrapError(ctx, "repository.Subscribe: listen", err)
	}

	listenCtx, cancel := context.WithCancel(ctx)
	feed := stream.NewFeed(r.feedBuffer, cancel)

	go r.listen(listenCtx, conn, feed)
	return feed, nil
}

func (r *AlertRepository) listen(ctx context.Context, conn *pgxpool.Conn, feed *stream.Feed) {
	log := r.logger.WithFields(logrus.Fields{
		"service": "repository",
		"method":  "listen",
		"channel": ChangeChannel,
	})
	log.Info("Listening for alert changes")

	defer r.releaseListener(conn, log)

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				feed.Finish(nil)
				return
			}
			log.WithError(err).Warn("Change stream connection lost")
			feed.Finish(e.WrapError(ctx, "repository.listen", err))
			return
		}
		if n.Channel != ChangeChannel {
			continue
		}

		ev, err := models.DecodeChange([]byte(n.Payload))
		if err != nil {
			log.WithError(err).Warn("Skipping undecodable change notification")
			continue
		}
		if ev.Partial {
			ev, err = r.completeChange(ctx, ev)
			if errors.Is(err, e.ErrNotFound) {
				log.WithField("alert_id", ev.ID).Debug("Changed alert no longer exists")
				continue
			}
			if err != nil {
				if ctx.Err() != nil {
					feed.Finish(nil)
					return
				}
				log.WithError(err).Warn("Failed to read changed alert")
				feed.Finish(err)
				return
			}
		}
		if ev.Type != models.ChangeDeleted {
			if err := ev.Alert.Validate(); err != nil {
				log.WithError(err).Warn("Skipping invalid change notification")
				continue
			}
		}
		if !feed.Send(ctx, ev) {
			feed.Finish(nil)
			return
		}
	}
}

// completeChange дочитывает строку, не поместившуюся в уведомление
func (r *AlertRepository) completeChange(ctx context.Context, ev models.ChangeEvent) (models.ChangeEvent, error) {
	a, err := r.fetchByID(ctx, ev.ID)
	if err != nil {
		return ev, err
	}
	return models.ChangeEvent{Type: ev.Type, Alert: a, ID: a.ID}, nil
}

// releaseListener снимает подписку; соединение в неизвестном состоянии закрывается, а не возвращается в пул
func (r *AlertRepository) releaseListener(conn *pgxpool.Conn, log *logrus.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), unlistenTimeout)
	defer cancel()

	if _, err := conn.Exec(ctx, "UNLISTEN "+ChangeChannel); err != nil {
		log.WithError(err).Debug("Unlisten failed, dropping connection")
		_ = conn.Conn().Close(ctx)
	}
	conn.Release()
	log.Info("Stopped listening for alert changes")
}
