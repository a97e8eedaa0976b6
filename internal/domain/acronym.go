package domain

import (
	"time"

	"github.com/google/uuid"
)

// Acronym is a short form paired with its expansion, owned by exactly one User.
type Acronym struct {
	ID        uuid.UUID `json:"id"`
	Short     string    `json:"short"`
	Long      string    `json:"long"`
	UserID    uuid.UUID `json:"userID"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// AcronymInput carries the fields used to create or replace an Acronym.
// Empty strings are legal values; presence is enforced at the transport edge.
type AcronymInput struct {
	Short  string
	Long   string
	UserID uuid.UUID
}

// NewAcronym creates a new Acronym from input with a fresh ID and timestamps.
// The owning user is not checked for existence here.
func NewAcronym(in AcronymInput) *Acronym {
	now := time.Now().UTC()
	return &Acronym{
		ID:        uuid.New(),
		Short:     in.Short,
		Long:      in.Long,
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply replaces every mutable field with the values from in and bumps UpdatedAt.
func (a *Acronym) Apply(in AcronymInput) {
	a.Short = in.Short
	a.Long = in.Long
	a.UserID = in.UserID
	a.UpdatedAt = time.Now().UTC()
}
