package usecase

import (
	"context"
	"strings"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type userInformationUsecase struct {
	repo     domain.UserInformationRepository
	validate *validator.Validate
}

func NewUserInformationUsecase(repo domain.UserInformationRepository, validate *validator.Validate) domain.UserInformationUsecase {
	return &userInformationUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *userInformationUsecase) Get(ctx context.Context) (*domain.UserInformation, error) {
	return u.repo.Get(ctx)
}

// Set replaces the singleton wholesale. The record is only stored once every
// check passes, so a rejected payload leaves the existing record untouched.
func (u *userInformationUsecase) Set(ctx context.Context, payload map[string]any) (*domain.UserInformation, error) {
	missing := validation.ValidateFields([]string{"name", "email_address", "phone_number"}, payload)
	if len(missing) > 0 {
		return nil, apperror.BadRequest(validation.RequiredFieldsError(missing))
	}

	info := &domain.UserInformation{
		Name:         stringField(payload, "name"),
		EmailAddress: stringField(payload, "email_address"),
		PhoneNumber:  stringField(payload, "phone_number"),
	}
	if !validation.ValidatePhoneNumber(info.PhoneNumber) {
		return nil, apperror.BadRequest("Invalid phone number")
	}
	if err := u.validate.Struct(info); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if err := u.repo.Set(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}
