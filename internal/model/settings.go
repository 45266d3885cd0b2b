package model

// Settings is the admin settings screen state.
type Settings struct {
	Notifications bool   `json:"notifications"`
	DarkMode      bool   `json:"dark_mode"`
	Timezone      string `json:"timezone"`
	Language      string `json:"language"`
}
