package domain

import "sort"

// A LikedSet is this browser session's record of liked product ids. It is
// a local claim only: it decides whether the heart renders filled, never
// the numeric like count shown to other users.
type LikedSet map[string]struct{}

func NewLikedSet(ids ...string) LikedSet {
	s := make(LikedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s LikedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in sorted order for stable persistence.
func (s LikedSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s LikedSet) Clone() LikedSet {
	c := make(LikedSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// A LikeToggle is the outcome of toggling a like: the product's new count
// and whether this session now likes it.
type LikeToggle struct {
	Likes int
	Liked bool
}

// Toggle flips membership of p.ID and computes the product's new like
// count, clamped at zero. It only updates the set; the caller owns the
// side effects (cache update, persistence, remote write).
func (s LikedSet) Toggle(p Product) LikeToggle {
	if s.Has(p.ID) {
		delete(s, p.ID)
		likes := p.Likes - 1
		if likes < 0 {
			likes = 0
		}
		return LikeToggle{Likes: likes, Liked: false}
	}
	s[p.ID] = struct{}{}
	return LikeToggle{Likes: p.Likes + 1, Liked: true}
}
