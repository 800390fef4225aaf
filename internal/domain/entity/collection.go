package entity

import (
	"fmt"
	"sort"
	"strings"
)

// SurahCount is the number of surahs in the Quran.
const SurahCount = 114

// AyahRef points at a single verse.
type AyahRef struct {
	Surah int `json:"surah"`
	Ayah  int `json:"ayah"`
}

// IsValid reports whether the reference is inside the Quran's surah range.
func (r AyahRef) IsValid() bool {
	return r.Surah >= 1 && r.Surah <= SurahCount && r.Ayah >= 1
}

// Key returns the set key of the reference.
func (r AyahRef) Key() string {
	return fmt.Sprintf("%d:%d", r.Surah, r.Ayah)
}

// BookmarkSet is an unordered set of verse references.
type BookmarkSet map[string]AyahRef

// Toggle adds the reference when absent and removes it when present.
// It returns true when the reference is in the set afterwards.
func (s BookmarkSet) Toggle(ref AyahRef) bool {
	key := ref.Key()
	if _, ok := s[key]; ok {
		delete(s, key)
		return false
	}
	s[key] = ref
	return true
}

// Sorted returns the references ordered by surah then ayah.
func (s BookmarkSet) Sorted() []AyahRef {
	refs := make([]AyahRef, 0, len(s))
	for _, ref := range s {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Surah != refs[j].Surah {
			return refs[i].Surah < refs[j].Surah
		}
		return refs[i].Ayah < refs[j].Ayah
	})
	return refs
}

// FavoriteSet is an unordered set of hadith identifiers.
type FavoriteSet map[string]bool

// Toggle adds the identifier when absent and removes it when present.
func (s FavoriteSet) Toggle(id string) bool {
	id = strings.TrimSpace(id)
	if s[id] {
		delete(s, id)
		return false
	}
	s[id] = true
	return true
}

// Sorted returns the identifiers in lexical order.
func (s FavoriteSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id, ok := range s {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
