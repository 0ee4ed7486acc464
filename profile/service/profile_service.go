package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/entity"
	notifpkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/notification"
	profilepkg "github.com/zamie0/CampusFood-Smart-Campus-Food-Ordering-Management-System-sub000/profile"
)

// profileService implements profile.Service.
type profileService struct {
	repo   profilepkg.Repository
	notifs notifpkg.Repository
}

// NewProfileService constructs a Service backed by the provided repositories.
func NewProfileService(repo profilepkg.Repository, notifs notifpkg.Repository) profilepkg.Service {
	return &profileService{repo: repo, notifs: notifs}
}

func (s *profileService) GetProfile(ctx context.Context, customerID uuid.UUID) (*entity.Profile, error) {
	p, err := s.repo.GetByCustomerID(ctx, customerID)
	if err == nil {
		return p, nil
	}
	if err != profilepkg.ErrNotFound {
		return nil, err
	}
	return s.repo.Store(ctx, &entity.Profile{CustomerID: customerID})
}

func (s *profileService) SubmitStudentID(ctx context.Context, customerID uuid.UUID, studentID string) (*entity.Profile, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, profilepkg.ErrEmptyStudentID
	}

	p, err := s.GetProfile(ctx, customerID)
	if err != nil {
		return nil, err
	}
	// Unchanged submission leaves the verification state alone.
	if p.StudentID == studentID {
		return p, nil
	}

	p.StudentID = studentID
	p.StudentIDVerified = entity.VerificationPending
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	// Alert admins. Best effort: the profile change is already committed.
	id := updated.ID
	_, _ = s.notifs.Store(ctx, &entity.Notification{
		Kind:     entity.NotificationStudentID,
		Message:  fmt.Sprintf("student ID submitted for verification (profile %s)", id),
		EntityID: &id,
	})
	return updated, nil
}

func (s *profileService) DecideStudentID(ctx context.Context, profileID uuid.UUID, action string, adminID uuid.UUID, reason string) (*entity.Profile, error) {
	var status entity.VerificationStatus
	var tag string
	switch action {
	case profilepkg.DecisionVerify:
		status, tag = entity.VerificationVerified, entity.AuditStudentIDVerified
	case profilepkg.DecisionDecline:
		status, tag = entity.VerificationDeclined, entity.AuditStudentIDDeclined
	default:
		return nil, profilepkg.ErrInvalidDecision
	}

	if _, err := s.repo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}
	entry := &entity.AuditLog{
		AdminID:    adminID,
		Action:     tag,
		EntityType: "profile",
		EntityID:   profileID,
		Reason:     reason,
	}
	if err := s.repo.SetVerificationWithAudit(ctx, profileID, status, entry); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, profileID)
}

func (s *profileService) UpdatePreferences(ctx context.Context, customerID uuid.UUID, upd profilepkg.PreferencesUpdate) (*entity.Profile, error) {
	p, err := s.GetProfile(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if upd.EmailUpdates != nil {
		p.EmailUpdates = *upd.EmailUpdates
	}
	if upd.Promotions != nil {
		p.Promotions = *upd.Promotions
	}
	return s.repo.Update(ctx, p)
}

func (s *profileService) ListPendingVerifications(ctx context.Context) ([]entity.Profile, error) {
	return s.repo.ListByVerification(ctx, entity.VerificationPending)
}
