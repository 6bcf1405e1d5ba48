package services

import (
	"context"
	"errors"
	"strings"

	"MediSure/config/logger"
	"MediSure/models"
	"MediSure/repository"
	"MediSure/util"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProfileInput struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=5"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Title       *string `json:"title"`
	Specialty   *string `json:"specialty"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=Male Female"`
	Dob         *string `json:"dob"`
}

type ProfileService struct {
	users    repository.UserRepository
	validate *validator.Validate
}

func NewProfileService(users repository.UserRepository) *ProfileService {
	return &ProfileService{users: users, validate: newValidator()}
}

func (s *ProfileService) Get(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, util.NotFoundError(util.USER_NOT_FOUND)
	}
	if err != nil {
		logger.Log.Error("Error while fetching the profile", zap.Error(err))
		return nil, util.InternalError(err)
	}
	clean := user.Sanitized()
	return &clean, nil
}

/*
* Validate only the fields that were sent
* Parse dob as a plain date or RFC3339
* An empty body returns the profile unchanged
 */
func (s *ProfileService) Update(ctx context.Context, userID primitive.ObjectID, in ProfileInput) (*models.User, error) {
	trim(in.DisplayName)
	trim(in.FirstName)
	trim(in.LastName)

	if err := s.validate.Struct(in); err != nil {
		return nil, toValidationError(err)
	}

	update := models.ProfileUpdate{
		DisplayName: in.DisplayName,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Title:       in.Title,
		Specialty:   in.Specialty,
		Gender:      in.Gender,
	}
	if in.Dob != nil && strings.TrimSpace(*in.Dob) != "" {
		dob, ok := parseDate(*in.Dob)
		if !ok {
			return nil, util.FieldValidationError(util.INVALID_DATE_OF_BIRTH, map[string]string{"dob": "date"})
		}
		update.Dob = &dob
	}
	if update.Empty() {
		return s.Get(ctx, userID)
	}

	user, err := s.users.Update(ctx, userID, update)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, util.NotFoundError(util.USER_NOT_FOUND)
	}
	if err != nil {
		logger.Log.Error("Error while updating the profile", zap.Error(err))
		return nil, util.InternalError(err)
	}
	clean := user.Sanitized()
	return &clean, nil
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
