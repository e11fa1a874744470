package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state of one browser. Data values must be JSON
// serialisable so every Store can persist them.
type Session struct {
	ID             uuid.UUID      `json:"id"`
	Token          string         `json:"token"`
	UserID         *int64         `json:"user_id,omitempty"`
	Data           map[string]any `json:"data,omitempty"`
	ExpiresAt      time.Time      `json:"expires_at"`
	LastActivityAt time.Time      `json:"last_activity_at"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewSession creates a session that expires after ttl.
func NewSession(token string, userID *int64, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		Token:          token,
		UserID:         userID,
		Data:           make(map[string]any),
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
		CreatedAt:      now,
	}
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != nil
}

func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.Data == nil {
		return nil, false
	}
	val, ok := s.Data[key]
	return val, ok
}

func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// Set stores a plain value. Use Put for structs and maps.
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.Data == nil {
		s.Data = make(map[string]any)
	}
	s.Data[key] = value
}

// Put stores value as encoded JSON, so later changes to value are not
// reflected in the session and every store round-trips it the same way.
func (s *Session) Put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("session: encode %q: %w", key, err)
	}
	s.Set(key, json.RawMessage(data))
	return nil
}

// Decode reads the value under key into dst. It reports false when the key
// is absent.
func (s *Session) Decode(key string, dst any) (bool, error) {
	val, ok := s.Get(key)
	if !ok || val == nil {
		return false, nil
	}

	var data []byte
	switch v := val.(type) {
	case json.RawMessage:
		data = v
	case []byte:
		data = v
	default:
		// values that came back from a store as generic JSON
		encoded, err := json.Marshal(v)
		if err != nil {
			return false, fmt.Errorf("session: decode %q: %w", key, err)
		}
		data = encoded
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("session: decode %q: %w", key, err)
	}
	return true, nil
}

func (s *Session) Delete(key string) {
	if s == nil || s.Data == nil {
		return
	}
	delete(s.Data, key)
}

// Clear removes all data from the session.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.Data = make(map[string]any)
}

// Touch updates the last activity time.
func (s *Session) Touch() {
	if s == nil {
		return
	}
	s.LastActivityAt = time.Now()
}

// clone copies s deeply enough that stores never share Data with callers.
func (s *Session) clone() *Session {
	cp := *s
	if s.UserID != nil {
		id := *s.UserID
		cp.UserID = &id
	}
	if s.Data != nil {
		cp.Data = make(map[string]any, len(s.Data))
		for k, v := range s.Data {
			if raw, ok := v.(json.RawMessage); ok {
				v = append(json.RawMessage(nil), raw...)
			}
			cp.Data[k] = v
		}
	}
	return &cp
}
