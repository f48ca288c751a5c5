package domain

import "context"

// UserInformation is a singleton record, not a collection.
type UserInformation struct {
	Name         string `json:"name" validate:"required"`
	EmailAddress string `json:"email_address" validate:"required,email"`
	PhoneNumber  string `json:"phone_number" validate:"required,intl_phone"`
}

type UserInformationRepository interface {
	Get(ctx context.Context) (*UserInformation, error)
	Set(ctx context.Context, info *UserInformation) error
}

type UserInformationUsecase interface {
	Get(ctx context.Context) (*UserInformation, error)
	// Set validates the payload (required fields, email format, international
	// phone number) and replaces the singleton wholesale.
	Set(ctx context.Context, payload map[string]any) (*UserInformation, error)
}
