package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
)

var (
	// ErrNotFound means the profile did not resolve.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidDecision rejects decision actions other than verify/decline.
	ErrInvalidDecision = errors.New("decision action must be verify or decline")
	// ErrEmptyStudentID refuses a blank submission.
	ErrEmptyStudentID = errors.New("student id must not be empty")
)

// Decision actions accepted by DecideStudentID.
const (
	DecisionVerify  = "verify"
	DecisionDecline = "decline"
)

// PreferencesUpdate applies partial notification-preference edits.
type PreferencesUpdate struct {
	EmailUpdates *bool
	Promotions   *bool
}

// Service exposes the student-ID verification workflow and profile
// preferences.
type Service interface {
	// GetProfile returns the customer's profile, creating an empty one on
	// first access.
	GetProfile(ctx context.Context, customerID uuid.UUID) (*entity.Profile, error)

	// SubmitStudentID stores a new student ID and drops verification back
	// to pending. Submitting the unchanged value is a no-op. Each real
	// change produces a durable admin notification.
	SubmitStudentID(ctx context.Context, customerID uuid.UUID, studentID string) (*entity.Profile, error)

	// DecideStudentID applies the admin decision (verified/declined) and
	// appends the audit entry in the same transaction.
	DecideStudentID(ctx context.Context, profileID uuid.UUID, action string, adminID uuid.UUID, reason string) (*entity.Profile, error)

	UpdatePreferences(ctx context.Context, customerID uuid.UUID, upd PreferencesUpdate) (*entity.Profile, error)

	// ListPendingVerifications returns profiles awaiting an admin decision.
	ListPendingVerifications(ctx context.Context) ([]entity.Profile, error)
}
