package utils

import (
	"log"

	"github.com/anshurajlive/Assetivo/database"
	"github.com/anshurajlive/Assetivo/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeReminderScheduler sets up the daily reminder notification job
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing reminder scheduler...")

	c := cron.New()

	// Run daily at 8 AM to notify owners of reminders due that day
	c.AddFunc("0 8 * * *", func() {
		log.Println("[REMINDER-SCHEDULER] Running daily reminder check...")
		ProcessDueReminders()
	})

	c.Start()
	log.Println("[REMINDER-SCHEDULER] Reminder scheduler started - runs daily at 8 AM")
}

// ProcessDueReminders emails every owner their uncompleted reminders due today
func ProcessDueReminders() {
	db := database.Database.Db

	today := now.BeginningOfDay()
	tomorrow := today.AddDate(0, 0, 1)

	var dueReminders []models.Reminder
	if err := db.
		Where("completed = false").
		Where("reminder_date >= ? AND reminder_date < ?", today, tomorrow).
		Find(&dueReminders).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching due reminders: %v", err)
		return
	}

	log.Printf("[REMINDER-SCHEDULER] Found %d reminders due today", len(dueReminders))

	for _, reminder := range dueReminders {
		var owner models.User
		if err := db.First(&owner, "id = ?", reminder.OwnerID).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Owner %s not found for reminder %s: %v", reminder.OwnerID, reminder.ID, err)
			continue
		}

		if err := SendReminderEmail(owner.Email, owner.Name, reminder.Message, reminder.ReminderDate); err != nil {
			log.Printf("[REMINDER-SCHEDULER] Failed to email %s: %v", owner.Email, err)
		}
	}
}
