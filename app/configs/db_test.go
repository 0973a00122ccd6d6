package configs

import (
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	env := ENV{DBUser: "shop", DBPassword: "p@ss:word", DBHost: "db", DBPort: "3307", DBName: "fitstore"}

	cfg, err := mysqldriver.ParseDSN(env.DSN())
	require.NoError(t, err)

	assert.Equal(t, "shop", cfg.User)
	assert.Equal(t, "p@ss:word", cfg.Passwd)
	assert.Equal(t, "db:3307", cfg.Addr)
	assert.Equal(t, "fitstore", cfg.DBName)
	assert.True(t, cfg.ParseTime)
}
