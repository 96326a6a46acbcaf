package auth

import "time"

// SessionWindow: session mati 8 jam setelah login, dihitung dari LoginAt,
// BUKAN dari aktivitas terakhir. Aktif terus juga tetap logout di jam ke-8.
const SessionWindow = 8 * time.Hour

type Session struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employee_id"`
	LoginAt        time.Time `json:"login_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// ExpiresAt adalah batas mati session.
func (s *Session) ExpiresAt() time.Time {
	return s.LoginAt.Add(SessionWindow)
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt())
}
