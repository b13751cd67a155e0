package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/taskpilot/client/domain"
)

const bucketName = "credentials"

// Bolt keeps credentials in a local BoltDB file, the closest thing a
// headless client has to browser local storage.
type Bolt struct {
	db     *bolt.DB
	bucket []byte
	logger *zap.Logger
}

var _ Store = (*Bolt)(nil)

// OpenBolt initializes the BoltDB file and ensures the bucket exists.
func OpenBolt(path string, logger *zap.Logger) (*Bolt, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Bolt{
		db:     db,
		bucket: []byte(bucketName),
		logger: logger,
	}, nil
}

func (s *Bolt) put(key string, value []byte) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	})
}

func (s *Bolt) get(key string) []byte {
	if s == nil || s.db == nil {
		return nil
	}
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(s.bucket).Get([]byte(key)); v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("credential read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	return out
}

func (s *Bolt) delete(keys ...string) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		for _, key := range keys {
			if err := b.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Bolt) SetAccessToken(token string) error  { return s.put(keyAccessToken, []byte(token)) }
func (s *Bolt) GetAccessToken() string             { return string(s.get(keyAccessToken)) }
func (s *Bolt) ClearAccessToken() error            { return s.delete(keyAccessToken) }
func (s *Bolt) SetRefreshToken(token string) error { return s.put(keyRefreshToken, []byte(token)) }
func (s *Bolt) GetRefreshToken() string            { return string(s.get(keyRefreshToken)) }
func (s *Bolt) ClearRefreshToken() error           { return s.delete(keyRefreshToken) }
func (s *Bolt) ClearAllTokens() error              { return s.delete(keyAccessToken, keyRefreshToken) }

func (s *Bolt) SetUser(user *domain.User) error {
	if user == nil {
		return s.ClearUser()
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.put(keyUser, payload)
}

func (s *Bolt) GetUser() *domain.User {
	raw := s.get(keyUser)
	if len(raw) == 0 {
		return nil
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Warn("cached user unreadable, ignoring", zap.Error(err))
		return nil
	}
	return &user
}

func (s *Bolt) ClearUser() error { return s.delete(keyUser) }

// ClearAuthStorage removes all three entries in a single transaction.
func (s *Bolt) ClearAuthStorage() error {
	return s.delete(keyAccessToken, keyRefreshToken, keyUser)
}

func (s *Bolt) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
