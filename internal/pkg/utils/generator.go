package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateBatteryID() string {
	return uuid.New().String()
}

func GenerateBatchID() string {
	return uuid.New().String()
}
