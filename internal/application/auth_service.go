package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/itbasis/go-clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/accadex/accadex/internal/domain/entity"
	repo "github.com/accadex/accadex/internal/domain/repository"
	"github.com/accadex/accadex/pkg/helpers"
	"github.com/accadex/accadex/pkg/mailer"
	mailtpl "github.com/accadex/accadex/pkg/mailer/templates"
)

// UserIndexer keeps the searchable user directory up to date.
type UserIndexer interface {
	Index(ctx context.Context, u entity.UserSummary) error
}

// JobPublisher puts a JSON job on a queue.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
	Academy  string
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string            `json:"token"`
	User  entity.PublicUser `json:"user"`
}

type AuthService struct {
	Users    repo.UserRepository
	Matches  repo.MatchRepository
	Insights repo.InsightRepository
	JWT      *helpers.JWTManager
	Clock    clock.Clock
	Logger   *logrus.Logger

	// Optional side effects; nil disables them.
	Indexer UserIndexer
	Emails  JobPublisher
	AppName string
}

func NewAuthService(store repo.Store, jwt *helpers.JWTManager, clk clock.Clock, logger *logrus.Logger) *AuthService {
	if logger == nil {
		logger = helpers.NewNopLogger()
	}
	return &AuthService{
		Users:    store.Users(),
		Matches:  store.Matches(),
		Insights: store.Insights(),
		JWT:      jwt,
		Clock:    clk,
		Logger:   logger,
		AppName:  "Accadex",
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account, gives it the starter matches and insights,
// and returns a session token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := helpers.HashPassword(in.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = entity.RolePlayer
	}
	academy := strings.TrimSpace(in.Academy)
	if academy == "" {
		academy = entity.DefaultAcademy
	}

	now := s.Clock.Now().UTC()
	u := &entity.User{
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Password:  hash,
		Academy:   academy,
		Role:      role,
		CreatedAt: now,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.Matches.CreateMany(ctx, welcomeMatches(u.ID, now)); err != nil {
		return nil, fmt.Errorf("create welcome matches: %w", err)
	}
	if err := s.Insights.CreateMany(ctx, welcomeInsights(u.ID, now)); err != nil {
		return nil, fmt.Errorf("create welcome insights: %w", err)
	}

	res, err := s.issue(u)
	if err != nil {
		return nil, err
	}

	s.indexUser(ctx, u)
	s.enqueueWelcome(ctx, u)
	return res, nil
}

// Login checks the credentials and returns a fresh session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

// Me returns the account behind a verified token.
func (s *AuthService) Me(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, _, err := s.JWT.Generate(u.ID, string(u.Role))
	if err != nil {
		helpers.LogError(s.Logger, "generate token failed", err, logrus.Fields{"user_id": u.ID})
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResult{Token: token, User: u.Public()}, nil
}

func (s *AuthService) indexUser(ctx context.Context, u *entity.User) {
	if s.Indexer == nil {
		return
	}
	if err := s.Indexer.Index(ctx, u.Summary()); err != nil {
		helpers.LogWarn(s.Logger, "index user failed", err, logrus.Fields{"user_id": u.ID})
	}
}

func (s *AuthService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Emails == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.Welcome,
		Data: mailtpl.NewWelcomeData(s.AppName, u.Name, u.Email, string(u.Role),
			mailtpl.WithAcademy(u.Academy),
			mailtpl.WithTime(u.CreatedAt),
		),
	}
	if err := s.Emails.PublishJSON(ctx, job); err != nil {
		helpers.LogWarn(s.Logger, "enqueue welcome email failed", err, logrus.Fields{"user_id": u.ID})
	}
}
