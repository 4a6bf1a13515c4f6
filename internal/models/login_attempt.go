package models

import "time"

type LoginAttempt struct {
	ID             int64     `json:"id"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	BrowserName    string    `json:"browser_name"`
	BrowserVersion string    `json:"browser_version"`
	OSName         string    `json:"os_name"`
	OSVersion      string    `json:"os_version"`
	DeviceType     string    `json:"device_type"`
	Succeeded      bool      `json:"succeeded"`
	AttemptedAt    time.Time `json:"attempted_at"`
}
