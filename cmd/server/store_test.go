package main

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/usersvc/internal/config"
	"github.com/example/usersvc/internal/repository"
)

func TestOpenStore_Memory(t *testing.T) {
	users, closeStore, err := openStore(&config.Config{StoreDriver: config.DriverMemory})
	require.NoError(t, err)
	defer closeStore()

	assert.IsType(t, &repository.MemoryUserRepository{}, users)
}

func TestOpenStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	users, closeStore, err := openStore(&config.Config{StoreDriver: config.DriverRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer closeStore()

	assert.IsType(t, &repository.RedisUserRepository{}, users)
}

func TestOpenStore_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, _, err := openStore(&config.Config{StoreDriver: config.DriverRedis, RedisAddr: addr})
	assert.Error(t, err)
}

func TestOpenStore_Unknown(t *testing.T) {
	_, _, err := openStore(&config.Config{StoreDriver: "mongo"})
	assert.Error(t, err)
}
