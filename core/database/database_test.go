package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect_InvalidConnection(t *testing.T) {
	cfg := Config{
		Host:           "localhost",
		Port:           9999, // unused port
		User:           "root",
		Password:       "wrongpassword",
		Name:           "tasks",
		TimeoutSeconds: 1,
	}

	// Connect should fail fast (refused or timeout) and return no handle.
	db, err := Connect(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
}
