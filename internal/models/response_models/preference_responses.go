package response_models

import "encoding/json"

type PreferencesResponse struct {
	Preferences json.RawMessage `json:"preferences"`
}

type SavePreferencesResponse struct {
	Success     bool            `json:"success"`
	Preferences json.RawMessage `json:"preferences"`
}
