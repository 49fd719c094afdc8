package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfileString(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := Profile{ID: "1001", Name: "Alice", Email: "alice@example.com", RegistrationDate: at, LastLogin: at}

	s := p.String()
	assert.Contains(t, s, "1001")
	assert.Contains(t, s, "Alice <alice@example.com>")
	assert.Contains(t, s, "face enrolled: no")

	p.HasFace = true
	assert.Contains(t, p.String(), "face enrolled: yes")
}
