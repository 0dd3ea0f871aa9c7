package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/accounts/internal/model"
)

const snapshotPrefix = "accounts/"

// accountSnapshot is the exported form of an account. Credentials are never exported.
type accountSnapshot struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Role        model.Role `json:"role"`
	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Export uploads a JSON snapshot of every account and returns its object key.
func (s *Accounts) Export(ctx context.Context) (string, error) {
	if s.storage == nil {
		return "", model.ErrExportDisabled
	}

	accounts, err := s.store.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list accounts: %w", err)
	}

	snapshot := make([]accountSnapshot, 0, len(accounts))
	for _, a := range accounts {
		snapshot = append(snapshot, accountSnapshot{
			ID:          a.ID,
			Email:       a.Email,
			FirstName:   a.FirstName,
			LastName:    a.LastName,
			Role:        a.Role,
			IsActive:    a.IsActive,
			IsStaff:     a.IsStaff,
			IsSuperuser: a.IsSuperuser,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		})
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal accounts snapshot: %w", err)
	}

	key := snapshotPrefix + s.now().UTC().Format("20060102T150405Z") + "-" + uuid.NewString() + ".json"
	if err := s.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data))); err != nil {
		s.logger.Error("Accounts service: failed to upload snapshot",
			"key", key,
			"error", err.Error())
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}

	s.logger.Info("Accounts service: snapshot exported",
		"key", key,
		"accounts", len(snapshot))

	return key, nil
}
