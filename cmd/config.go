package cmd

import "fmt"

// Config carries everything the application needs to start: the HTTP bind
// port, the Postgres connection settings, and the ledger sweep schedule.
type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	ReconcileSchedule string
}

// DSN renders the Postgres connection string for the GORM driver.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
