package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewTrainingCenter(t *testing.T) {
	t.Parallel() // Enable parallel execution
	center, err := NewTrainingCenter("CT King", "Rua Y, Q01", "Augusto")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if center.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if center.Name != "CT King" {
		t.Errorf("Expected name CT King, got %s", center.Name)
	}

	if center.Address != "Rua Y, Q01" {
		t.Errorf("Expected address Rua Y, Q01, got %s", center.Address)
	}

	if center.Owner != "Augusto" {
		t.Errorf("Expected owner Augusto, got %s", center.Owner)
	}

	// Test empty name
	_, err = NewTrainingCenter("", "Rua Y, Q01", "Augusto")
	if err != ErrTrainingCenterNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrTrainingCenterNameEmpty, err)
	}
}

func TestTrainingCenterValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	validCenter := TrainingCenter{
		ID:      uuid.New(),
		Name:    "CT King",
		Address: "Rua Y, Q01",
		Owner:   "Augusto",
	}

	if err := validCenter.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalid := validCenter
	invalid.ID = uuid.Nil
	if err := invalid.Validate(); err != ErrTrainingCenterIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrTrainingCenterIDEmpty, err)
	}

	invalid = validCenter
	invalid.Name = strings.Repeat("a", TrainingCenterNameMaxLen+1)
	if err := invalid.Validate(); err != ErrTrainingCenterNameTooLong {
		t.Errorf("Expected error %v, got %v", ErrTrainingCenterNameTooLong, err)
	}

	invalid = validCenter
	invalid.Address = strings.Repeat("a", TrainingCenterAddressMaxLen+1)
	if err := invalid.Validate(); err != ErrTrainingCenterAddressTooLong {
		t.Errorf("Expected error %v, got %v", ErrTrainingCenterAddressTooLong, err)
	}

	invalid = validCenter
	invalid.Owner = strings.Repeat("a", TrainingCenterOwnerMaxLen+1)
	if err := invalid.Validate(); err != ErrTrainingCenterOwnerTooLong {
		t.Errorf("Expected error %v, got %v", ErrTrainingCenterOwnerTooLong, err)
	}
}
