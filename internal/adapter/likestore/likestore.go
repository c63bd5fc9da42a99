package likestore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.etcd.io/bbolt"

	"github.com/guicpereira/LojaVOKA/internal/core/domain"
	"github.com/guicpereira/LojaVOKA/internal/core/port"
)

var _ port.LikedSetRepository = (*LikeStore)(nil)

const (
	bucketName = "storefront"
	likedKey   = "lista_likes_usuario"

	openTimeout = time.Second
)

// LikeStore persists the session's liked-set in a local bbolt file under
// a single well-known key, as a JSON array of product IDs.
type LikeStore struct {
	db *bbolt.DB
}

func New(path string) (*LikeStore, error) {
	const op = "likestore.New"

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &LikeStore{db: db}, nil
}

// Load reads the stored liked-set. An absent key yields the empty set.
// Malformed contents also yield the empty set, logged but not failed, so
// a corrupt file never blocks startup.
func (s *LikeStore) Load() (domain.LikedSet, error) {
	const op = "LikeStore.Load"
	log := slog.With("op", op)

	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(likedKey)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if raw == nil {
		return domain.NewLikedSet(), nil
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		log.Warn("stored liked set is malformed, resetting", "err", err)
		return domain.NewLikedSet(), nil
	}

	return domain.NewLikedSet(ids...), nil
}

func (s *LikeStore) Save(set domain.LikedSet) error {
	const op = "LikeStore.Save"

	raw, err := json.Marshal(set.IDs())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(likedKey), raw)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *LikeStore) Close() error {
	return s.db.Close()
}
