package schedule

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeFixed    = "fixed"
	TypeFlexible = "flexible"
)

// Schedule adalah pola jam kerja yang ditempelkan ke employee lewat
// ScheduleGroup. Jam disimpan sebagai string "HH:MM" di timezone
// aplikasi, bukan time.Time, supaya tidak tergantung tanggal.
type Schedule struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code string    `gorm:"type:varchar(50);uniqueIndex:uq_schedule_code;not null" json:"code"`
	Name string    `gorm:"type:varchar(100);not null" json:"name"`

	// Type fixed punya jam masuk/pulang; flexible tidak dan tidak pernah LATE
	Type      string `gorm:"type:varchar(20);not null;default:'fixed'" json:"type"`
	StartTime string `gorm:"type:varchar(5)" json:"start_time"` // "08:00", kosong untuk flexible
	EndTime   string `gorm:"type:varchar(5)" json:"end_time"`   // "17:00", kosong untuk flexible

	// WorkingDays disimpan CSV "Mon,Tue,Wed,Thu,Fri"
	WorkingDays string `gorm:"type:varchar(50);not null" json:"working_days"`

	BreakMinutes             int `gorm:"not null;default:60" json:"break_minutes"`
	OvertimeThresholdMinutes int `gorm:"not null;default:480" json:"overtime_threshold_minutes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Schedule) TableName() string {
	return "schedules"
}

func (s *Schedule) IsFlexible() bool {
	return s.Type == TypeFlexible
}

func (s *Schedule) WorkingDayList() []string {
	if s.WorkingDays == "" {
		return nil
	}
	parts := strings.Split(s.WorkingDays, ",")
	days := make([]string, 0, len(parts))
	for _, p := range parts {
		if d := strings.TrimSpace(p); d != "" {
			days = append(days, d)
		}
	}
	return days
}

// StartOn mengubah StartTime menjadi instant pada tanggal tertentu.
// Mengembalikan false kalau schedule flexible atau format jam rusak.
func (s *Schedule) StartOn(day time.Time, loc *time.Location) (time.Time, bool) {
	if s.IsFlexible() || s.StartTime == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), true
}
