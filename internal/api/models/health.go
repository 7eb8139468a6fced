package models

import (
	"time"
)

// HealthCheck ... Returns health status of server
type HealthCheck struct {
	Timestamp             time.Time              `json:"timestamp"`
	Healthy               bool                   `json:"healthy"`
	ChainConnectionStatus *ChainConnectionStatus `json:"chain_connection_status"`
}

// ChainConnectionStatus ... Used to display health status of each node connection
type ChainConnectionStatus struct {
	IsL1Healthy bool `json:"is_l1_healthy"`
	IsL2Healthy bool `json:"is_l2_healthy"`
}
