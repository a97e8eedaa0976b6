package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewAcronym(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	acronym := NewAcronym(AcronymInput{Short: "OMG", Long: "Oh My God", UserID: userID})

	if acronym.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if acronym.Short != "OMG" || acronym.Long != "Oh My God" {
		t.Errorf("Unexpected fields: %+v", acronym)
	}
	if acronym.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, acronym.UserID)
	}
	if acronym.CreatedAt.IsZero() || acronym.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}
}

func TestNewAcronymKeepsEmptyValues(t *testing.T) {
	t.Parallel()

	acronym := NewAcronym(AcronymInput{})

	if acronym.ID == uuid.Nil {
		t.Error("Expected a generated ID")
	}
	if acronym.Short != "" || acronym.Long != "" || acronym.UserID != uuid.Nil {
		t.Errorf("Expected empty values to be stored as given, got %+v", acronym)
	}
}

func TestAcronymApply(t *testing.T) {
	t.Parallel()
	acronym := NewAcronym(AcronymInput{Short: "LOL", Long: "Laugh Out Loud", UserID: uuid.New()})
	originalID := acronym.ID
	createdAt := acronym.CreatedAt
	newOwner := uuid.New()

	acronym.Apply(AcronymInput{Short: "IKR", Long: "I Know Right", UserID: newOwner})

	if acronym.ID != originalID {
		t.Error("Apply must not change the ID")
	}
	if !acronym.CreatedAt.Equal(createdAt) {
		t.Error("Apply must not change CreatedAt")
	}
	if acronym.Short != "IKR" || acronym.Long != "I Know Right" || acronym.UserID != newOwner {
		t.Errorf("Expected all fields replaced, got %+v", acronym)
	}

	acronym.Apply(AcronymInput{Long: "Long only", UserID: newOwner})
	if acronym.Short != "" || acronym.Long != "Long only" {
		t.Errorf("Expected empty short to replace the old value, got %+v", acronym)
	}
}
