package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	errs "landingcms/internal/errors"
	"landingcms/internal/model"
	"landingcms/internal/repository"
)

var (
	emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{9,11}$`)
)

// ContactService validates and records public contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, name, email, phone, message string) (*model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
}

type contactService struct {
	contacts repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(contacts repository.ContactRepository) ContactService {
	return &contactService{contacts: contacts}
}

func (s *contactService) Submit(ctx context.Context, name, email, phone, message string) (*model.Contact, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidation("name", "is required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, errs.NewValidation("message", "is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, errs.NewValidation("email", "is not a valid email address")
	}
	if !phonePattern.MatchString(phone) {
		return nil, errs.NewValidation("phone", "must be 9 to 11 digits")
	}

	contact := &model.Contact{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.contacts.List(ctx)
}
