package dto

// ToggleBookmarkRequest represents the request body for toggling an ayah bookmark.
type ToggleBookmarkRequest struct {
	Surah int `json:"surah"`
	Ayah  int `json:"ayah"`
}

// ToggleFavoriteRequest represents the request body for toggling a hadith favorite.
type ToggleFavoriteRequest struct {
	HadithID string `json:"hadith_id"`
}
