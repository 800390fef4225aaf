// Package profile contains profile and device registration use cases.
package profile

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// DefaultProfileName is used when a device registers without a name.
const DefaultProfileName = "Guest"

// maxNameLength bounds the profile name.
const maxNameLength = 100

// RegisterDeviceInput represents the input for registering a device.
type RegisterDeviceInput struct {
	Name       string
	City       string
	Latitude   *float64
	Longitude  *float64
	ExternalID *string
}

// RegisterDeviceOutput represents the output of registering a device.
type RegisterDeviceOutput struct {
	Profile     *entity.UserProfile `json:"profile"`
	AccessToken string              `json:"access_token"`
	ExpiresAt   time.Time           `json:"expires_at"`
}

// RegisterDeviceUseCase creates a fresh profile and issues its device token.
type RegisterDeviceUseCase struct {
	profileRepo      adapter.ProfileRepository
	tokenService     adapter.TokenService
	clock            adapter.Clock
	sink             adapter.AnalyticsSink
	defaultLatitude  float64
	defaultLongitude float64
}

// NewRegisterDeviceUseCase creates a new RegisterDeviceUseCase instance.
func NewRegisterDeviceUseCase(
	profileRepo adapter.ProfileRepository,
	tokenService adapter.TokenService,
	clock adapter.Clock,
	sink adapter.AnalyticsSink,
	defaultLatitude float64,
	defaultLongitude float64,
) *RegisterDeviceUseCase {
	return &RegisterDeviceUseCase{
		profileRepo:      profileRepo,
		tokenService:     tokenService,
		clock:            clock,
		sink:             sink,
		defaultLatitude:  defaultLatitude,
		defaultLongitude: defaultLongitude,
	}
}

// Execute registers the device.
func (uc *RegisterDeviceUseCase) Execute(ctx context.Context, input RegisterDeviceInput) (*RegisterDeviceOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = DefaultProfileName
	}
	lat, lng := uc.defaultLatitude, uc.defaultLongitude
	if input.Latitude != nil {
		lat = *input.Latitude
	}
	if input.Longitude != nil {
		lng = *input.Longitude
	}
	if err := validateProfile(name, lat, lng); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	profile := entity.NewUserProfile(uuid.New(), name, strings.TrimSpace(input.City), now)
	profile.Latitude = lat
	profile.Longitude = lng
	profile.ExternalID = trimmed(input.ExternalID)

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to save profile",
			err,
		)
	}

	token, err := uc.tokenService.GenerateDeviceToken(ctx, profile.ID)
	if err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to issue device token",
			err,
		)
	}

	progress.Emit(ctx, uc.sink, entity.NewActionEvent(
		entity.EventProfileCreated,
		profile.ID,
		"",
		now,
		map[string]string{"city": profile.City},
	))

	return &RegisterDeviceOutput{
		Profile:     profile,
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}

// validateProfile validates the editable profile fields.
func validateProfile(name string, lat, lng float64) error {
	if name == "" || len([]rune(name)) > maxNameLength {
		return domainerror.NewProfileError(
			domainerror.ErrCodeInvalidProfileName,
			"name must be between 1 and 100 characters",
			domainerror.ErrInvalidProfileName,
		)
	}
	if !entity.ValidCoordinates(lat, lng) {
		return domainerror.NewProfileError(
			domainerror.ErrCodeInvalidCoordinates,
			"invalid coordinates",
			domainerror.ErrInvalidCoordinates,
		)
	}
	return nil
}

// trimmed returns nil for a nil or blank value.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
