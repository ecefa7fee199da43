package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

const (
	keyPrefix  = "odoonto:directory:"
	doctorsKey = keyPrefix + "doctors"
	patientKey = keyPrefix + "patients"
	defaultTTL = 5 * time.Minute
)

// DirectoryCache keeps the doctor and patient listings in redis. A nil
// *DirectoryCache always misses.
type DirectoryCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewDirectoryCache(client *redis.Client, ttl time.Duration) *DirectoryCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &DirectoryCache{redis: client, ttl: ttl}
}

func (c *DirectoryCache) Doctors(ctx context.Context) ([]domain.Doctor, bool, error) {
	var doctors []domain.Doctor
	ok, err := c.get(ctx, doctorsKey, &doctors)
	return doctors, ok, err
}

func (c *DirectoryCache) SetDoctors(ctx context.Context, doctors []domain.Doctor) error {
	return c.set(ctx, doctorsKey, doctors)
}

func (c *DirectoryCache) Patients(ctx context.Context) ([]domain.Patient, bool, error) {
	var patients []domain.Patient
	ok, err := c.get(ctx, patientKey, &patients)
	return patients, ok, err
}

func (c *DirectoryCache) SetPatients(ctx context.Context, patients []domain.Patient) error {
	return c.set(ctx, patientKey, patients)
}

func (c *DirectoryCache) Invalidate(ctx context.Context) error {
	if c == nil || c.redis == nil {
		return nil
	}
	if err := c.redis.Del(ctx, doctorsKey, patientKey).Err(); err != nil {
		return fmt.Errorf("cache: invalidate directory: %w", err)
	}
	return nil
}

func (c *DirectoryCache) get(ctx context.Context, key string, out interface{}) (bool, error) {
	if c == nil || c.redis == nil {
		return false, nil
	}

	data, err := c.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("cache: unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (c *DirectoryCache) set(ctx context.Context, key string, value interface{}) error {
	if c == nil || c.redis == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}
