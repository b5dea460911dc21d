package models

import "time"

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type AnalysisData struct {
	ID         string      `json:"id"`
	Kind       RequestKind `json:"kind"`
	Analysis   string      `json:"analysis"`
	AnalyzedAt time.Time   `json:"analyzed_at"`
}

type HealthCheck struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}
