package jobs

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"migranthealth/store"

	"github.com/robfig/cron/v3"
)

func StartDailyScheduler(s *store.Store, backupDir string) {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running Daily Snapshot And Camp Reminder...")
		RunDailyTasks(s, backupDir, time.Now())
	})

	c.Start()
}

func RunDailyTasks(s *store.Store, backupDir string, now time.Time) {
	if err := WriteSnapshot(s, backupDir, now); err != nil {
		log.Println("Error writing daily snapshot:", err)
	}
	LogTodayCamps(s, now)
}

// WriteSnapshot dumps a dated copy of the full state for manual recovery;
// an empty state produces no file.
func WriteSnapshot(s *store.Store, backupDir string, now time.Time) error {
	state := s.Snapshot()
	if state.Empty() {
		return nil
	}
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return err
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	name := filepath.Join(backupDir, "state-"+now.Format("02-01-2006")+".json")
	return os.WriteFile(name, raw, 0644)
}

// LogTodayCamps reminds operators which camps run today. Camp dates are the
// raw form strings, so only the date-picker layout is matched.
func LogTodayCamps(s *store.Store, now time.Time) {
	today := now.Format("2006-01-02")
	for _, camp := range s.HealthCamps() {
		if camp.Date == today {
			log.Println("Health camp today:", camp.Name, "at", camp.Location)
		}
	}
}
