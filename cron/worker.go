package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"stayflow/config"
	roomRepo "stayflow/database/repository/room"
	"stayflow/services/notification"
	"stayflow/services/revenue"

	"github.com/hibiken/asynq"
)

const (
	TypeRevenueRollup      = "revenue:rollup"
	TypeHousekeepingRemind = "housekeeping:remind"
	rollupCronSpec         = "0 2 * * *" // 02:00 daily, rolls up the previous day
	housekeepingCronSpec   = "0 7 * * *" // 07:00 daily, reminds on tasks due today
)

// RollupPayload names the date to roll up. Empty means "yesterday".
type RollupPayload struct {
	Date string `json:"date"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobQueueDB,
	}
}

// InitWorker runs the async worker and its schedule in the background.
func InitWorker(revSvc revenue.RevenueService, rooms roomRepo.RoomRepository, notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRevenueRollup, handleRevenueRollup(revSvc))
	mux.HandleFunc(TypeHousekeepingRemind, handleHousekeepingRemind(rooms, notifSvc))

	go runScheduler()

	go func() {
		log.Println("[Worker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// runScheduler enqueues the nightly rollup and the morning task reminder.
func runScheduler() {
	scheduler := asynq.NewScheduler(redisOpts(), &asynq.SchedulerOpts{Location: time.Local})

	if _, err := scheduler.Register(rollupCronSpec, asynq.NewTask(TypeRevenueRollup, nil)); err != nil {
		log.Printf("[Worker] ❌ Failed to register revenue rollup schedule: %v", err)
	}
	if _, err := scheduler.Register(housekeepingCronSpec, asynq.NewTask(TypeHousekeepingRemind, nil)); err != nil {
		log.Printf("[Worker] ❌ Failed to register housekeeping reminder schedule: %v", err)
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[Worker] ❌ Scheduler stopped: %v", err)
	}
}

func handleRevenueRollup(revSvc revenue.RevenueService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p RollupPayload
		if len(task.Payload()) > 0 {
			if err := json.Unmarshal(task.Payload(), &p); err != nil {
				log.Printf("[RevenueRollup] 🔴 Invalid payload: %v", err)
				return err
			}
		}

		date := p.Date
		if date == "" {
			date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		}

		log.Printf("[RevenueRollup] ⏰ Rolling up revenue for %s", date)
		if err := revSvc.RollupDate(date); err != nil {
			log.Printf("[RevenueRollup] ❌ Rollup failed for %s: %v", date, err)
			return err
		}
		return nil
	}
}

func handleHousekeepingRemind(rooms roomRepo.RoomRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		today := time.Now().Format("2006-01-02")
		tasks, err := rooms.GetTasksDueOn(today)
		if err != nil {
			log.Printf("[HousekeepingRemind] ❌ Failed to load due tasks: %v", err)
			return err
		}

		for _, t := range tasks {
			if t.AssignedTo == "" {
				continue
			}
			data := map[string]string{
				"taskId":  t.ID,
				"roomId":  t.RoomID,
				"dueDate": t.DueDate,
			}
			if err := notifSvc.SendStaffPush(ctx, t.AssignedTo, "Task due today", t.Note, data); err != nil {
				log.Printf("[HousekeepingRemind] ❌ Failed to notify staff %s: %v", t.AssignedTo, err)
			}
		}
		return nil
	}
}
