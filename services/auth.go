package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"MediSure/config/jwt"
	"MediSure/config/logger"
	"MediSure/models"
	"MediSure/repository"
	"MediSure/session"
	"MediSure/util"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type SignupInput struct {
	DisplayName     string `json:"displayName" validate:"required,min=5"`
	Email           string `json:"email" validate:"required,emailformat"`
	Password        string `json:"password" validate:"required,min=5"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Title           string `json:"title"`
	Specialty       string `json:"specialty"`
	NPINumber       string `json:"npiNumber"`
	LicenseNumber   string `json:"licenseNumber"`
	PracticeName    string `json:"practiceName"`
	PracticeType    string `json:"practiceType" validate:"omitempty,oneof=solo group hospital other"`
	EHR             string `json:"ehr"`
	State           string `json:"state"`
	TermsConsent    bool   `json:"termsConsent"`
	HIPAAConsent    bool   `json:"hipaaConsent"`
	Gender          string `json:"gender" validate:"omitempty,oneof=Male Female"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResult struct {
	SessionID string
	UserID    string
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	users    repository.UserRepository
	sessions session.Store
	tokens   *jwt.Manager
	validate *validator.Validate
	cost     int
	now      func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(users repository.UserRepository, sessions session.Store, tokens *jwt.Manager) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		validate: newValidator(),
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
}

// WithHashCost lowers the bcrypt cost; tests use bcrypt.MinCost.
func (s *AuthService) WithHashCost(cost int) *AuthService {
	s.cost = cost
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

/*
* Trim the text fields and validate every rule, one message per rule
* Reject an email that is already registered
* Hash the password, save the user
* Open a session and issue a bearer token for mobile clients
 */
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	in.Email = normalizeEmail(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if err := s.validate.Struct(in); err != nil {
		return nil, toValidationError(err)
	}

	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, util.ConflictError(util.EMAIL_ALREADY_IN_USE)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logger.Log.Error("Error while checking the email", zap.Error(err))
		return nil, util.InternalError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, util.InternalError(err)
	}

	now := s.now().UTC()
	user := &models.User{
		DisplayName:   in.DisplayName,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Password:      string(hash),
		Title:         in.Title,
		Specialty:     in.Specialty,
		NPINumber:     in.NPINumber,
		LicenseNumber: in.LicenseNumber,
		PracticeName:  in.PracticeName,
		PracticeType:  in.PracticeType,
		EHR:           in.EHR,
		State:         in.State,
		TermsConsent:  in.TermsConsent,
		HIPAAConsent:  in.HIPAAConsent,
		Gender:        in.Gender,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, util.ConflictError(util.EMAIL_ALREADY_IN_USE)
		}
		logger.Log.Error("Error while saving the user", zap.Error(err))
		return nil, util.InternalError(err)
	}

	logger.Log.Info("User signed up", zap.String("userId", user.ID.Hex()))
	return s.openSession(ctx, user)
}

/*
* A caller that still holds a live session is told so
* Unknown email and wrong password share one message
* and both pay for a bcrypt comparison
 */
func (s *AuthService) Login(ctx context.Context, in LoginInput, currentSessionID string) (*AuthResult, error) {
	if currentSessionID != "" {
		if _, err := s.sessions.Get(ctx, currentSessionID); err == nil {
			return nil, util.ConflictError(util.ALREADY_LOGGED_IN)
		}
	}

	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, util.ValidationError(util.PLEASE_FILL_ALL_THE_FIELDS)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		logger.Log.Error("Error while fetching the user for login", zap.Error(err))
		return nil, util.InternalError(err)
	}

	hash := s.dummy()
	if user != nil {
		hash = []byte(user.Password)
	}
	if cmpErr := bcrypt.CompareHashAndPassword(hash, []byte(in.Password)); cmpErr != nil || user == nil {
		return nil, util.ValidationError(util.INCORRECT_EMAIL_OR_PASSWORD)
	}

	return s.openSession(ctx, user)
}

// Logout destroys the referenced session. No session is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		logger.Log.Error("Error while destroying the session", zap.Error(err))
		return &util.AppError{Kind: util.KindInternal, Message: util.FAILED_TO_LOGOUT, Err: err}
	}
	return nil
}

func (s *AuthService) openSession(ctx context.Context, user *models.User) (*AuthResult, error) {
	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		logger.Log.Error("Error while creating the session", zap.Error(err))
		return nil, util.InternalError(err)
	}

	token, err := s.tokens.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		logger.Log.Error("Error while generating the token", zap.Error(err))
		return nil, util.InternalError(err)
	}

	return &AuthResult{
		SessionID: sess.ID,
		UserID:    user.ID.Hex(),
		Token:     token,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

func (s *AuthService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("medisure-timing-equaliser"), s.cost)
	})
	return s.dummyHash
}
