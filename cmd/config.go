package cmd

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	KafkaBrokers            string
	KafkaNotificationsTopic string

	TracingEnabled bool
	OTLPEndpoint   string

	RelaySchedule      string
	LoadAuditSchedule  string
	StaleTaskSchedule  string
	StaleTaskThreshold time.Duration
	RelayBatchSize     int
}

// DSN is the libpq connection string, shared by gorm and the LISTEN connection.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Brokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Validate reports settings the process cannot start without.
func (c Config) Validate() error {
	var missing []string
	for name, value := range map[string]string{
		"HTTP_PORT":  c.HTTPPort,
		"DB_HOST":    c.DBHost,
		"DB_NAME":    c.DBName,
		"JWT_SECRET": c.JWTSecret,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}
	if c.StaleTaskThreshold <= 0 {
		return fmt.Errorf("STALE_TASK_THRESHOLD must be positive, got %s", c.StaleTaskThreshold)
	}
	return nil
}
