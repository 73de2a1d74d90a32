package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"campus-pulse/core/cache"
	"campus-pulse/core/config"
	"campus-pulse/core/constants"
	"campus-pulse/core/errors"
	"campus-pulse/core/logger"
	"campus-pulse/core/utils"
	"campus-pulse/modules/auth/dto"

	userEntity "campus-pulse/modules/user/entity"
	userRepository "campus-pulse/modules/user/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// AuthService handles signup, login and the Google OAuth flow
type AuthService struct {
	users userRepository.UserRepositoryInterface
	cache cache.Cache
}

// AuthServiceInterface defines the service contract
type AuthServiceInterface interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.LoginResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, *errors.AppError)
	GetGoogleAuthURL(ctx context.Context) (string, *errors.AppError)
	HandleGoogleCallback(ctx context.Context, code string, state string) (*dto.LoginResponse, *errors.AppError)
}

func NewAuthService(users userRepository.UserRepositoryInterface, cacheClient cache.Cache) AuthServiceInterface {
	return &AuthService{
		users: users,
		cache: cacheClient,
	}
}

func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.LoginResponse, *errors.AppError) {
	if req.Email == "" || req.Username == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Email and username are required", nil)
	}
	if len(req.Password) < 8 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Password must be at least 8 characters", nil)
	}

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check email", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Email already registered", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Signup:Hash", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", err)
	}

	fullName := req.FullName
	if fullName == "" {
		fullName = req.Username
	}

	user, err := s.users.Create(ctx, &userEntity.User{
		Email:        req.Email,
		Username:     req.Username,
		FullName:     fullName,
		PasswordHash: &hashed,
		Role:         constants.RoleUser,
		SignupMethod: constants.SignupMethodPassword,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil || user.PasswordHash == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid credentials", nil)
	}

	if !utils.CheckPassword(*user.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid credentials", nil)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, *errors.AppError) {
	tokenData, appErr := utils.ValidateAndParseToken(refreshToken)
	if appErr != nil {
		return nil, appErr
	}
	if tokenData.Scope != constants.ScopeTokenRefresh {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Not a refresh token", nil)
	}

	user, err := s.users.GetByID(ctx, tokenData.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Account no longer exists", nil)
	}

	return s.issueTokens(user)
}

// GetGoogleAuthURL starts the OAuth flow. The state token lives in redis for
// ten minutes and is consumed by the callback.
func (s *AuthService) GetGoogleAuthURL(ctx context.Context) (string, *errors.AppError) {
	oauthConfig, appErr := s.googleConfig()
	if appErr != nil {
		return "", appErr
	}

	state := utils.GenerateRandomString(32)
	if _, err := s.cache.SetOnce(ctx, constants.RedisKeyOAuthState+state, 10*time.Minute); err != nil {
		logger.Error("AuthService:GetGoogleAuthURL:State", err)
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to store state token", err)
	}

	return oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

func (s *AuthService) HandleGoogleCallback(ctx context.Context, code string, state string) (*dto.LoginResponse, *errors.AppError) {
	stateKey := constants.RedisKeyOAuthState + state
	known, err := s.cache.Exists(ctx, stateKey)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:State", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to validate state token", err)
	}
	if !known {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid or expired state token", nil)
	}
	// One-time use.
	_ = s.cache.Delete(ctx, stateKey)

	oauthConfig, appErr := s.googleConfig()
	if appErr != nil {
		return nil, appErr
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:Exchange", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Failed to exchange authorization code", err)
	}

	userInfo, err := s.getGoogleUserInfo(ctx, token.AccessToken)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:UserInfo", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user info", err)
	}
	if userInfo.Email == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Google account has no email", nil)
	}

	username := userInfo.Name
	if username == "" {
		username = userInfo.Email
	}

	user, err := s.users.UpsertGoogleUser(ctx, userInfo.Email, username, userInfo.Name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upsert user", err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *userEntity.User) (*dto.LoginResponse, *errors.AppError) {
	accessToken, err := utils.GenerateToken(user.ID, user.Email, user.Role, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:IssueTokens:Access", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate token", err)
	}

	refreshToken, err := utils.GenerateToken(user.ID, user.Email, user.Role, constants.ScopeTokenRefresh)
	if err != nil {
		logger.Error("AuthService:IssueTokens:Refresh", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate token", err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) googleConfig() (*oauth2.Config, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}
	if cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.ClientSecret == "" || cfg.GoogleAPI.RedirectURI == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Google OAuth configuration is missing", nil)
	}

	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}, nil
}

func (s *AuthService) getGoogleUserInfo(ctx context.Context, accessToken string) (*dto.GoogleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{Timeout: constants.DefaultTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get user info: %s", string(body))
	}

	var userInfo dto.GoogleUserInfo
	if err := json.Unmarshal(body, &userInfo); err != nil {
		return nil, err
	}

	return &userInfo, nil
}
