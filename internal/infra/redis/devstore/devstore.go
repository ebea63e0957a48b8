// Package infra_devstore mirrors the handful of fields the mobile client
// keeps in local device storage: the onboarding-complete flag, the
// serialized authenticated-user snapshot and the theme preference. Plain
// string values, last writer wins, no versioning.
package infra_devstore

import (
	"github.com/go-redis/redis"
)

const (
	FieldOnboardingComplete = "onboarding_complete"
	FieldAuthUser           = "auth_user"
	FieldTheme              = "theme"
)

type Driver struct {
	client *redis.Client
	prefix string
}

func New(
	client *redis.Client,
	prefix string,
) *Driver {
	return &Driver{
		client: client,
		prefix: prefix,
	}
}

// Set writes a device field. Fields never expire; the mirror outlives the
// in-memory session.
func (d *Driver) Set(deviceID, field, value string) error {
	return d.client.Set(d.fullKey(deviceID, field), value, 0).Err()
}

func (d *Driver) Get(deviceID, field string) (string, error) {
	val, err := d.client.Get(d.fullKey(deviceID, field)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (d *Driver) Delete(deviceID, field string) error {
	return d.client.Del(d.fullKey(deviceID, field)).Err()
}

func (d *Driver) fullKey(deviceID, field string) string {
	if d.prefix != "" {
		return d.prefix + ":" + deviceID + ":" + field
	}
	return deviceID + ":" + field
}
