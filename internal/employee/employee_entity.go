package employee

import (
	"strings"
	"time"

	"go-attendance/internal/permission"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number;type:varchar(20);not null;uniqueIndex:uq_employee_number"`

	FirstName  string `gorm:"column:first_name;type:varchar(100);not null"`
	MiddleName string `gorm:"column:middle_name;type:varchar(100)"`
	LastName   string `gorm:"column:last_name;type:varchar(100);not null"`

	Email       string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	Phone       string     `gorm:"column:phone;type:varchar(30)"`
	Address     string     `gorm:"column:address;type:text"`
	Birthday    *time.Time `gorm:"column:birthday;type:date"`
	CivilStatus string     `gorm:"column:civil_status;type:varchar(20)"`
	HireDate    time.Time  `gorm:"column:hire_date;type:date;not null"`

	Position      string `gorm:"column:position;type:varchar(100)"`
	Department    string `gorm:"column:department;type:varchar(50);index"`
	ScheduleGroup string `gorm:"column:schedule_group;type:varchar(50);not null;index"`

	// Rates disimpan dalam sen (satuan terkecil) untuk hindari floating error.
	DailyRateCents  int64 `gorm:"column:daily_rate_cents;type:bigint;not null;default:0"`
	HourlyRateCents int64 `gorm:"column:hourly_rate_cents;type:bigint;not null;default:0"`

	Status       string `gorm:"column:status;type:varchar(20);not null;default:'active';index"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`

	Permissions permission.Flags `gorm:"embedded"`

	// Group membership, comma-separated (mis: "sales,management")
	Groups string `gorm:"column:groups;type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.FirstName, e.MiddleName, e.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func (e *Employee) GroupList() []string {
	if e.Groups == "" {
		return nil
	}
	raw := strings.Split(e.Groups, ",")
	groups := make([]string, 0, len(raw))
	for _, g := range raw {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
