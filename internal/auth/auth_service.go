package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/employee"
	"go-attendance/internal/leave"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BiometricVerifier memeriksa sample biometrik saat login. Default-nya
// no-op; implementasi sungguhan (fingerprint reader, face ID gateway)
// tinggal di-plug tanpa menyentuh service.
type BiometricVerifier interface {
	Verify(ctx context.Context, employeeID, sample string) (bool, error)
}

type noopVerifier struct{}

func (noopVerifier) Verify(ctx context.Context, employeeID, sample string) (bool, error) {
	return true, nil
}

func NewNoopVerifier() BiometricVerifier {
	return noopVerifier{}
}

// EmployeeDirectory adalah interface lokal; employee.Repository yang implement.
type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
	FindByEmployeeNumber(ctx context.Context, number string) (*employee.Employee, error)
}

// CreditSource adalah interface lokal; leave.Service yang implement.
type CreditSource interface {
	GetCredits(ctx context.Context, employeeID string) ([]leave.LeaveCreditResponse, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, sessionID string) (MeResponse, error)

	// Validate dipanggil middleware di tiap request
	Validate(ctx context.Context, sessionID string, now time.Time) (string, error)
}

type service struct {
	employees EmployeeDirectory
	sessions  SessionStore
	credits   CreditSource
	biometric BiometricVerifier
	logger    *zap.Logger
}

func NewService(
	employees EmployeeDirectory,
	sessions SessionStore,
	credits CreditSource,
	biometric BiometricVerifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if biometric == nil {
		biometric = NewNoopVerifier()
	}
	return &service{
		employees: employees,
		sessions:  sessions,
		credits:   credits,
		biometric: biometric,
		logger:    l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	empl, err := s.employees.FindByEmployeeNumber(ctx, req.EmployeeNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("login unknown employee number", zap.String("employee_number", req.EmployeeNumber))
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if !empl.IsActive() {
		s.logger.Warn("login inactive employee", zap.String("employee_id", empl.ID.String()))
		return LoginResponse{}, autherrors.ErrEmployeeInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empl.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login password mismatch", zap.String("employee_number", req.EmployeeNumber))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	ok, err := s.biometric.Verify(ctx, empl.ID.String(), req.BiometricSample)
	if err != nil {
		s.logger.Error("biometric verify failed", zap.Error(err))
		return LoginResponse{}, err
	}
	if !ok {
		return LoginResponse{}, autherrors.ErrBiometricRejected
	}

	now := time.Now().UTC()
	sess := &Session{
		ID:             uuid.NewString(),
		EmployeeID:     empl.ID.String(),
		LoginAt:        now,
		LastActivityAt: now,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.logger.Error("save session failed", zap.Error(err))
		return LoginResponse{}, err
	}

	token, err := s.generateToken(sess)
	if err != nil {
		return LoginResponse{}, err
	}

	s.logger.Info("login success",
		zap.String("employee_id", empl.ID.String()),
		zap.String("session_id", sess.ID),
	)

	return LoginResponse{
		AccessToken: token,
		ExpiresAt:   sess.ExpiresAt(),
		Employee:    toProfile(empl),
	}, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("delete session failed", zap.String("session_id", sessionID), zap.Error(err))
		return err
	}
	s.logger.Info("logout success", zap.String("session_id", sessionID))
	return nil
}

func (s *service) Me(ctx context.Context, sessionID string) (MeResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return MeResponse{}, err
	}

	empl, err := s.employees.FindByID(ctx, sess.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeResponse{}, autherrors.ErrSessionNotFound
		}
		return MeResponse{}, err
	}

	credits, err := s.credits.GetCredits(ctx, sess.EmployeeID)
	if err != nil {
		return MeResponse{}, err
	}

	return MeResponse{
		Profile:        toProfile(empl),
		SessionExpires: sess.ExpiresAt(),
		LastActivityAt: sess.LastActivityAt,
		LeaveCredits:   credits,
	}, nil
}

// Validate memeriksa jendela 8 jam dan mencatat aktivitas. Session yang
// lewat jendela langsung dihapus supaya request berikutnya cepat gagal.
func (s *service) Validate(ctx context.Context, sessionID string, now time.Time) (string, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	if sess.Expired(now) {
		_ = s.sessions.Delete(ctx, sessionID)
		s.logger.Info("session expired", zap.String("session_id", sessionID))
		return "", autherrors.ErrSessionExpired
	}

	sess.LastActivityAt = now.UTC()
	if err := s.sessions.Touch(ctx, sess); err != nil {
		// Gagal update aktivitas bukan alasan menolak request
		s.logger.Warn("touch session failed", zap.String("session_id", sessionID), zap.Error(err))
	}

	return sess.EmployeeID, nil
}

func (s *service) generateToken(sess *Session) (string, error) {
	claims := jwt.MapClaims{
		"session_id":  sess.ID,
		"employee_id": sess.EmployeeID,
		"iat":         sess.LoginAt.Unix(),
		"exp":         sess.ExpiresAt().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func toProfile(e *employee.Employee) MeProfile {
	return MeProfile{
		ID:             e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		FullName:       e.FullName(),
		Position:       e.Position,
		Department:     e.Department,
		ScheduleGroup:  e.ScheduleGroup,
		Permissions:    e.Permissions,
	}
}
