package cmd

import "time"

type Config struct {
	APIBaseURL    string
	LoginEmail    string
	LoginPassword string
	TokenFile     string

	PollWindowHours int
	MaxDistanceKm   float64

	OrderRefreshInterval time.Duration
	LocationPushInterval time.Duration

	DeviceLatitude  float64
	DeviceLongitude float64
	PushToken       string

	LogLevel string
}
