package request_models

import "encoding/json"

type SavePreferencesRequest struct {
	Preferences json.RawMessage `json:"preferences"`
}
