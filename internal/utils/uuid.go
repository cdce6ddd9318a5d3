package utils

import "github.com/google/uuid"

// UUIDGenerator produces trace identifiers. Time-ordered v7 ids are preferred;
// a random v4 id is returned if the v7 source fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
