package profile

import (
	"github.com/billfold/backend/internal/domain/shared"
)

// BusinessProfileRepository defines persistence operations for business profiles
type BusinessProfileRepository interface {
	shared.Repository[BusinessProfile]
}

// ClientRepository defines persistence operations for clients
type ClientRepository interface {
	shared.Repository[Client]
}
