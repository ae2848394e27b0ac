package db

import "time"

type MariaDbConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// withParams appends query parameters to a go-sql-driver DSN.
func (c MariaDbConfig) withParams(params string) string {
	sep := "?"
	for i := 0; i < len(c.DSN); i++ {
		if c.DSN[i] == '?' {
			sep = "&"
			break
		}
	}
	return c.DSN + sep + params
}
