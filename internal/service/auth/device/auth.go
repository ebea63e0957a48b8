// Package service_device_auth handles the demo-grade device identity
// flow: tokens are minted freely, signup always succeeds, and login simply
// re-hydrates whatever snapshot the device last stored. There is no
// credential verification anywhere in the product.
package service_device_auth

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	infra_devstore "github.com/reeltaste/core/internal/infra/redis/devstore"
	"github.com/reeltaste/core/internal/model"
)

type Token = string

var (
	ErrInternal = errors.New("internal error")
)

const defaultSessionTTL = 30 * 24 * time.Hour

type SessionCache interface {
	Set(key string, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Touch(key string, ttl time.Duration) error
}

type DeviceStore interface {
	Set(deviceID, field, value string) error
	Get(deviceID, field string) (string, error)
	Delete(deviceID, field string) error
}

type Service struct {
	sessionCache SessionCache
	deviceStore  DeviceStore
	ttl          time.Duration
}

type ServiceOption func(*Service)

func WithTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		s.ttl = ttl
	}
}

func New(
	sessionCache SessionCache,
	deviceStore DeviceStore,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		sessionCache: sessionCache,
		deviceStore:  deviceStore,
		ttl:          defaultSessionTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartSession mints a fresh device token.
func (s *Service) StartSession() (Token, error) {
	const activeSession = "active"

	t := uuid.New().String()
	if err := s.sessionCache.Set(t, activeSession, s.ttl); err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return t, nil
}

// IsValid checks the token against the cache and slides its expiry on
// activity.
func (s *Service) IsValid(t Token) (bool, error) {
	v, err := s.sessionCache.Get(t)
	if err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	if v == "" {
		return false, nil
	}
	if err := s.sessionCache.Touch(t, s.ttl); err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	return true, nil
}

// userSnapshot is the serialized auth_user record mirrored to device
// storage.
type userSnapshot struct {
	ID          string `json:"id"`
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarColor string `json:"avatar_color"`
}

// Signup synthesizes a new user and persists it as the device's
// authenticated user. Any input succeeds.
func (s *Service) Signup(t Token, handle, displayName string) (model.User, error) {
	u := model.User{
		ID:          uuid.New(),
		Handle:      handle,
		DisplayName: displayName,
		AvatarColor: "#7c5cff",
	}

	if err := s.persist(t, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Login re-hydrates the previously persisted user. The second return is
// false when the device never signed up.
func (s *Service) Login(t Token) (model.User, bool, error) {
	raw, err := s.deviceStore.Get(t, infra_devstore.FieldAuthUser)
	if err != nil {
		return model.User{}, false, errors.Join(ErrInternal, err)
	}
	if raw == "" {
		return model.User{}, false, nil
	}

	var snap userSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return model.User{}, false, errors.Join(ErrInternal, err)
	}

	id, err := uuid.Parse(snap.ID)
	if err != nil {
		return model.User{}, false, errors.Join(ErrInternal, err)
	}

	return model.User{
		ID:          id,
		Handle:      snap.Handle,
		DisplayName: snap.DisplayName,
		Bio:         snap.Bio,
		AvatarColor: snap.AvatarColor,
	}, true, nil
}

// Logout clears the mirrored snapshot; the session reverts to the default
// seeded identity.
func (s *Service) Logout(t Token) error {
	if err := s.deviceStore.Delete(t, infra_devstore.FieldAuthUser); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// Persist mirrors profile edits of the authenticated user back to device
// storage.
func (s *Service) Persist(t Token, u model.User) error {
	return s.persist(t, u)
}

func (s *Service) persist(t Token, u model.User) error {
	snap := userSnapshot{
		ID:          u.ID.String(),
		Handle:      u.Handle,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarColor: u.AvatarColor,
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if err := s.deviceStore.Set(t, infra_devstore.FieldAuthUser, string(raw)); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// SetTheme mirrors the theme preference, last writer wins.
func (s *Service) SetTheme(t Token, theme string) error {
	if err := s.deviceStore.Set(t, infra_devstore.FieldTheme, theme); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (s *Service) Theme(t Token) (string, error) {
	theme, err := s.deviceStore.Get(t, infra_devstore.FieldTheme)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return theme, nil
}

func (s *Service) CompleteOnboarding(t Token) error {
	if err := s.deviceStore.Set(t, infra_devstore.FieldOnboardingComplete, "true"); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (s *Service) OnboardingComplete(t Token) (bool, error) {
	v, err := s.deviceStore.Get(t, infra_devstore.FieldOnboardingComplete)
	if err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	return v == "true", nil
}
