package service

import (
	"context"
	"errors"
	"log/slog"

	cfg "github.com/lockwoodcarter/agency-api/configs"
	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type AuthService interface {
	LoginCallback(ctx context.Context, code string) (*models.User, error)
}

type authService struct {
	cfg cfg.Config
	u   repository.UserRepository
}

func NewAuthService(cfg cfg.Config, u repository.UserRepository) AuthService {
	return &authService{cfg: cfg, u: u}
}

// LoginCallback exchanges the OAuth code, looks the user up by email, and
// registers unknown users. The very first account becomes the owner; everyone
// after signs up as a property advisor until an owner or admin changes their
// role.
func (s *authService) LoginCallback(ctx context.Context, code string) (*models.User, error) {
	if code == "" {
		err := errors.New("authorization code is empty")
		slog.Info(err.Error())
		return nil, err
	}

	oauth2Config := &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.GoogleRedirectURI,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}

	if oauth2Config.ClientID == "" || oauth2Config.ClientSecret == "" {
		err := errors.New("OAuth2 configuration is incomplete")
		slog.Info(err.Error())
		return nil, err
	}

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	client := oauth2Config.Client(ctx, token)
	oauthSrv, err := googleoauth.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	userInfo, err := oauthSrv.Userinfo.Get().Do()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	user, exists, err := s.u.GetByEmail(ctx, userInfo.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return user, nil
	}

	count, err := s.u.Count(ctx)
	if err != nil {
		return nil, err
	}
	role := models.RolePropertyAdvisor
	if count == 0 {
		role = models.RoleOwner
	}

	newUser := &models.User{
		GoogleID:       userInfo.Id,
		Email:          userInfo.Email,
		Name:           userInfo.Name,
		Role:           role,
		ProfilePicture: userInfo.Picture,
	}
	id, err := s.u.Create(ctx, newUser)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	newUser.ID = id
	return newUser, nil
}
