package service_device_auth

import (
	"errors"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type DeviceAuthSuite struct {
	suite.Suite
}

type memSessionCache struct {
	values  map[string]string
	touched []string
	err     error
}

func newMemSessionCache() *memSessionCache {
	return &memSessionCache{values: make(map[string]string)}
}

func (c *memSessionCache) Set(key, value string, _ time.Duration) error {
	if c.err != nil {
		return c.err
	}
	c.values[key] = value
	return nil
}

func (c *memSessionCache) Get(key string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.values[key], nil
}

func (c *memSessionCache) Touch(key string, _ time.Duration) error {
	if c.err != nil {
		return c.err
	}
	c.touched = append(c.touched, key)
	return nil
}

type memDeviceStore struct {
	fields map[string]map[string]string
	err    error
}

func newMemDeviceStore() *memDeviceStore {
	return &memDeviceStore{fields: make(map[string]map[string]string)}
}

func (d *memDeviceStore) Set(deviceID, field, value string) error {
	if d.err != nil {
		return d.err
	}
	if d.fields[deviceID] == nil {
		d.fields[deviceID] = make(map[string]string)
	}
	d.fields[deviceID][field] = value
	return nil
}

func (d *memDeviceStore) Get(deviceID, field string) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	return d.fields[deviceID][field], nil
}

func (d *memDeviceStore) Delete(deviceID, field string) error {
	if d.err != nil {
		return d.err
	}
	delete(d.fields[deviceID], field)
	return nil
}

type resources struct {
	service *Service
	cache   *memSessionCache
	store   *memDeviceStore
}

func initResources() *resources {
	cache := newMemSessionCache()
	store := newMemDeviceStore()

	return &resources{
		service: New(cache, store),
		cache:   cache,
		store:   store,
	}
}

func (suite *DeviceAuthSuite) TestSessions(t provider.T) {
	t.Parallel()

	t.Run("Minted tokens validate and are distinct", func(t provider.T) {
		t.Parallel()
		r := initResources()

		first, err := r.service.StartSession()
		assert.NoError(t, err)
		second, err := r.service.StartSession()
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)

		ok, err := r.service.IsValid(first)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, r.cache.touched, first)
	})

	t.Run("Unknown token is invalid", func(t provider.T) {
		t.Parallel()
		r := initResources()

		ok, err := r.service.IsValid("never-minted")

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Cache failure surfaces as internal", func(t provider.T) {
		t.Parallel()
		r := initResources()
		r.cache.err = errors.New("redis gone")

		_, err := r.service.StartSession()

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (suite *DeviceAuthSuite) TestIdentity(t provider.T) {
	t.Parallel()

	t.Run("Signup then login round-trips the user", func(t provider.T) {
		t.Parallel()
		r := initResources()
		token, _ := r.service.StartSession()

		created, err := r.service.Signup(token, "nightowl", "Night Owl")
		assert.NoError(t, err)
		assert.Equal(t, "nightowl", created.Handle)

		got, found, err := r.service.Login(token)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, created, got)
	})

	t.Run("Login before signup reports not found", func(t provider.T) {
		t.Parallel()
		r := initResources()
		token, _ := r.service.StartSession()

		_, found, err := r.service.Login(token)

		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Persist mirrors profile edits", func(t provider.T) {
		t.Parallel()
		r := initResources()
		token, _ := r.service.StartSession()
		u, _ := r.service.Signup(token, "nightowl", "Night Owl")

		u.Bio = "up past midnight"
		assert.NoError(t, r.service.Persist(token, u))

		got, found, err := r.service.Login(token)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "up past midnight", got.Bio)
	})

	t.Run("Logout clears the snapshot", func(t provider.T) {
		t.Parallel()
		r := initResources()
		token, _ := r.service.StartSession()
		_, _ = r.service.Signup(token, "nightowl", "Night Owl")

		assert.NoError(t, r.service.Logout(token))

		_, found, err := r.service.Login(token)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Corrupt snapshot surfaces as internal", func(t provider.T) {
		t.Parallel()
		r := initResources()
		token, _ := r.service.StartSession()
		_ = r.store.Set(token, "auth_user", "{not json")

		_, _, err := r.service.Login(token)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (suite *DeviceAuthSuite) TestPreferences(t provider.T) {
	t.Parallel()

	t.Run("Theme defaults empty and last write wins", func(t provider.T) {
		t.Parallel()
		r := initResources()
		token, _ := r.service.StartSession()

		theme, err := r.service.Theme(token)
		assert.NoError(t, err)
		assert.Empty(t, theme)

		assert.NoError(t, r.service.SetTheme(token, "dark"))
		assert.NoError(t, r.service.SetTheme(token, "light"))

		theme, err = r.service.Theme(token)
		assert.NoError(t, err)
		assert.Equal(t, "light", theme)
	})

	t.Run("Onboarding flips once and stays", func(t provider.T) {
		t.Parallel()
		r := initResources()
		token, _ := r.service.StartSession()

		done, err := r.service.OnboardingComplete(token)
		assert.NoError(t, err)
		assert.False(t, done)

		assert.NoError(t, r.service.CompleteOnboarding(token))

		done, err = r.service.OnboardingComplete(token)
		assert.NoError(t, err)
		assert.True(t, done)
	})
}

func TestDeviceAuthSuite(t *testing.T) {
	suite.RunSuite(t, new(DeviceAuthSuite))
}
