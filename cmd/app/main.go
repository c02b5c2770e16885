package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lastmile/cmd"
	"lastmile/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	appLogger := logger.New(logger.Options{
		Service: "lastmile",
		Level:   configs.LogLevel,
	})

	root, err := cmd.NewCompositionRoot(configs, appLogger)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}

	ctx := context.Background()

	sessions := root.CreateSessionManager()
	identity, err := sessions.Establish(ctx, configs.LoginEmail, configs.LoginPassword)
	if err != nil {
		log.Fatalf("login: %v", err)
	}

	refresher := root.CreateRefresher(identity)
	jobManager := root.CreateJobManager(identity, refresher)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	jobManager.StopAll()
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		APIBaseURL:           goDotEnvVariable("API_BASE_URL"),
		LoginEmail:           goDotEnvVariable("LOGIN_EMAIL"),
		LoginPassword:        goDotEnvVariable("LOGIN_PASSWORD"),
		TokenFile:            goDotEnvVariable("TOKEN_FILE"),
		PollWindowHours:      intVariable("POLL_WINDOW_HOURS", 24),
		MaxDistanceKm:        floatVariable("MAX_DISTANCE_KM", 15),
		OrderRefreshInterval: durationVariable("ORDER_REFRESH_INTERVAL", time.Minute),
		LocationPushInterval: durationVariable("LOCATION_PUSH_INTERVAL", 10*time.Second),
		DeviceLatitude:       floatVariable("DEVICE_LATITUDE", 0),
		DeviceLongitude:      floatVariable("DEVICE_LONGITUDE", 0),
		PushToken:            os.Getenv("PUSH_TOKEN"),
		LogLevel:             os.Getenv("LOG_LEVEL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func intVariable(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return v
}

func floatVariable(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return v
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return v
}
