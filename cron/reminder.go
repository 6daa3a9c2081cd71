package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cleanly/config"
	bookingRepo "cleanly/database/repository/booking"
	"cleanly/models"
	"cleanly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBookingReminder = "booking:reminder"

// ReminderPayload is the task body queued when a booking is created.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	FireDate  string `json:"fireDate"`
}

// ReminderScheduler enqueues booking reminders onto the asynq queue,
// scheduled to fire at the booking date.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates the enqueue side of the reminder queue.
func NewReminderScheduler(cfg *config.Config) *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisReminderDB,
	})
	return &ReminderScheduler{client: client}
}

// ScheduleBookingReminder queues a reminder task for the booking date.
// Bookings already in the past get no reminder.
func (s *ReminderScheduler) ScheduleBookingReminder(b *models.Booking) error {
	if !b.BookingDate.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		BookingID: b.ID,
		UserID:    b.UserID,
		FireDate:  b.BookingDate.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(b.BookingDate)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the queue connection.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}

// StartReminderWorker runs the asynq worker that fires booking reminders.
// The returned server can be shut down alongside the HTTP server.
func StartReminderWorker(cfg *config.Config, bookings bookingRepo.BookingRepository) *asynq.Server {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisReminderDB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, handleBookingReminder(bookings))

	go func() {
		utils.GetLogger().Info("starting booking reminder worker")
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Error("reminder worker stopped", zap.Error(err))
		}
	}()
	return srv
}

func handleBookingReminder(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		b, err := bookings.GetByID(p.BookingID)
		if err != nil {
			return err
		}
		// Cancelled bookings and deleted records need no reminder.
		if b == nil || b.Status == models.BookingCancelled {
			return nil
		}

		logger.Info("booking reminder due",
			zap.String("bookingId", b.ID),
			zap.String("userId", b.UserID),
			zap.String("status", b.Status),
			zap.Time("bookingDate", b.BookingDate),
		)
		return nil
	}
}
