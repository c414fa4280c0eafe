package update_preferences

// UpdatePreferencesRequest HTTP request model
type UpdatePreferencesRequest struct {
	Room string `json:"room"`
	View string `json:"view"`
}
