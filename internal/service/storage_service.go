// FILE: internal/service/storage_service.go
// Connects external storage providers (Google Drive, Dropbox, OneDrive)
// where photographers keep their delivery folders. Provider tokens are
// encrypted before they touch the database.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"photofolio-be/internal/config"
	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/pkg/cryptoutils"
	"photofolio-be/internal/pkg/logger"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"
)

type IStorageService interface {
	GetConnectURL(userId uuid.UUID, provider string) (string, error)
	HandleCallback(ctx context.Context, provider, code, state string) (*dto.StorageAccountResponse, error)
	ListAccounts(ctx context.Context, userId uuid.UUID) ([]*dto.StorageAccountResponse, error)
	Disconnect(ctx context.Context, userId uuid.UUID, provider string) error

	// AccessToken returns a live (refreshed if needed) decrypted access
	// token for the user's account at the given provider.
	AccessToken(ctx context.Context, userId uuid.UUID, provider string) (string, error)
}

type storageService struct {
	uowFactory unitofwork.RepositoryFactory
	cipher     *cryptoutils.Cipher
	configs    map[entity.StorageProvider]*oauth2.Config
	logger     logger.ILogger
}

func NewStorageService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, cipher *cryptoutils.Cipher, log logger.ILogger) IStorageService {
	redirect := func(provider string) string {
		return fmt.Sprintf("%s/api/storage/%s/callback", cfg.OAuth.RedirectBaseURL, provider)
	}

	configs := map[entity.StorageProvider]*oauth2.Config{
		entity.StorageProviderGoogleDrive: {
			ClientID:     cfg.OAuth.GoogleClientID,
			ClientSecret: cfg.OAuth.GoogleClientSecret,
			RedirectURL:  redirect("google_drive"),
			Scopes: []string{
				"https://www.googleapis.com/auth/drive.file",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
		entity.StorageProviderDropbox: {
			ClientID:     cfg.OAuth.DropboxClientID,
			ClientSecret: cfg.OAuth.DropboxClientSecret,
			RedirectURL:  redirect("dropbox"),
			Scopes:       []string{"files.content.write", "files.content.read"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://www.dropbox.com/oauth2/authorize",
				TokenURL: "https://api.dropboxapi.com/oauth2/token",
			},
		},
		entity.StorageProviderMicrosoft: {
			ClientID:     cfg.OAuth.MicrosoftClientID,
			ClientSecret: cfg.OAuth.MicrosoftClientSecret,
			RedirectURL:  redirect("microsoft"),
			Scopes:       []string{"Files.ReadWrite", "offline_access"},
			Endpoint:     microsoft.AzureADEndpoint("common"),
		},
	}

	return &storageService{
		uowFactory: uowFactory,
		cipher:     cipher,
		configs:    configs,
		logger:     log,
	}
}

func (s *storageService) providerConfig(provider string) (entity.StorageProvider, *oauth2.Config, error) {
	p := entity.StorageProvider(provider)
	conf, ok := s.configs[p]
	if !ok {
		return "", nil, errors.New("unsupported storage provider")
	}
	return p, conf, nil
}

func (s *storageService) GetConnectURL(userId uuid.UUID, provider string) (string, error) {
	_, conf, err := s.providerConfig(provider)
	if err != nil {
		return "", err
	}

	// The state token carries the user id through the provider redirect.
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"purpose": "storage_connect",
		"exp":     time.Now().Add(15 * time.Minute).Unix(),
	}
	state, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
	if err != nil {
		return "", err
	}

	return conf.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

func (s *storageService) HandleCallback(ctx context.Context, provider, code, state string) (*dto.StorageAccountResponse, error) {
	p, conf, err := s.providerConfig(provider)
	if err != nil {
		return nil, err
	}

	userId, err := s.userIdFromState(state)
	if err != nil {
		return nil, err
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %v", err)
	}

	encAccess, err := s.cipher.Encrypt(token.AccessToken)
	if err != nil {
		return nil, err
	}
	encRefresh, err := s.cipher.Encrypt(token.RefreshToken)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	account := &entity.StorageAccount{
		Id:             uuid.New(),
		UserId:         userId,
		Provider:       p,
		AccessToken:    encAccess,
		RefreshToken:   encRefresh,
		TokenExpiresAt: token.Expiry,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := uow.StorageAccountRepository().Upsert(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("storage", "Storage account connected", map[string]interface{}{
		"user_id":  userId.String(),
		"provider": provider,
	})

	return &dto.StorageAccountResponse{
		Id:             account.Id,
		Provider:       string(account.Provider),
		AccountEmail:   account.AccountEmail,
		TokenExpiresAt: account.TokenExpiresAt,
		CreatedAt:      account.CreatedAt,
	}, nil
}

func (s *storageService) ListAccounts(ctx context.Context, userId uuid.UUID) ([]*dto.StorageAccountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	accounts, err := uow.StorageAccountRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.StorageAccountResponse, 0)
	for _, a := range accounts {
		result = append(result, &dto.StorageAccountResponse{
			Id:             a.Id,
			Provider:       string(a.Provider),
			AccountEmail:   a.AccountEmail,
			TokenExpiresAt: a.TokenExpiresAt,
			CreatedAt:      a.CreatedAt,
		})
	}

	return result, nil
}

func (s *storageService) Disconnect(ctx context.Context, userId uuid.UUID, provider string) error {
	p, _, err := s.providerConfig(provider)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	account, err := uow.StorageAccountRepository().FindByUserProvider(ctx, userId, p)
	if err != nil {
		return err
	}
	if account == nil {
		return nil
	}

	return uow.StorageAccountRepository().Delete(ctx, account.Id)
}

func (s *storageService) AccessToken(ctx context.Context, userId uuid.UUID, provider string) (string, error) {
	p, conf, err := s.providerConfig(provider)
	if err != nil {
		return "", err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	account, err := uow.StorageAccountRepository().FindByUserProvider(ctx, userId, p)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", errors.New("storage account not connected")
	}

	access, err := s.cipher.Decrypt(account.AccessToken)
	if err != nil {
		return "", err
	}

	if time.Now().Before(account.TokenExpiresAt.Add(-time.Minute)) {
		return access, nil
	}

	refresh, err := s.cipher.Decrypt(account.RefreshToken)
	if err != nil {
		return "", err
	}
	if refresh == "" {
		return "", errors.New("storage token expired and no refresh token stored")
	}

	src := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refresh})
	fresh, err := src.Token()
	if err != nil {
		return "", fmt.Errorf("token refresh failed: %v", err)
	}

	encAccess, err := s.cipher.Encrypt(fresh.AccessToken)
	if err != nil {
		return "", err
	}
	account.AccessToken = encAccess
	if fresh.RefreshToken != "" {
		encRefresh, err := s.cipher.Encrypt(fresh.RefreshToken)
		if err != nil {
			return "", err
		}
		account.RefreshToken = encRefresh
	}
	account.TokenExpiresAt = fresh.Expiry
	account.UpdatedAt = time.Now()

	if err := uow.StorageAccountRepository().Upsert(ctx, account); err != nil {
		s.logger.Warn("storage", "Failed to persist refreshed token", map[string]interface{}{
			"user_id":  userId.String(),
			"provider": provider,
		})
	}

	return fresh.AccessToken, nil
}

func (s *storageService) userIdFromState(state string) (uuid.UUID, error) {
	token, err := jwt.Parse(state, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.New("invalid state token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != "storage_connect" {
		return uuid.Nil, errors.New("invalid state token")
	}

	idStr, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid state token")
	}

	return userId, nil
}
