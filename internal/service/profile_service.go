package service

import (
	"context"
	"errors"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// UpsertProfileInput - частичное обновление: пустые поля не затирают
// ранее сохраненные значения
type UpsertProfileInput struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status"`
	GithubUsername string `json:"githubUsername"`
	Skills         string `json:"skills"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type ProfileService interface {
	Upsert(ctx context.Context, userID string, input UpsertProfileInput) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetAll(ctx context.Context) ([]models.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Upsert(ctx context.Context, userID string, input UpsertProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, models.ErrProfileNotFound) {
			return nil, err
		}
		// профиля еще нет, создаем с нуля
		profile = &models.Profile{UserID: userID}
	}

	applyProfileInput(profile, input)

	err = s.profileRepo.Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *profileService) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *profileService) GetAll(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.GetAll(ctx)
}

// applyProfileInput переносит в профиль только заполненные поля
func applyProfileInput(profile *models.Profile, input UpsertProfileInput) {
	if input.Company != "" {
		profile.Company = input.Company
	}
	if input.Website != "" {
		profile.Website = input.Website
	}
	if input.Location != "" {
		profile.Location = input.Location
	}
	if input.Bio != "" {
		profile.Bio = input.Bio
	}
	if input.Status != "" {
		profile.Status = input.Status
	}
	if input.GithubUsername != "" {
		profile.GithubUsername = input.GithubUsername
	}
	if input.Skills != "" {
		profile.Skills = splitSkills(input.Skills)
	}

	if input.Youtube != "" {
		profile.Social.Youtube = input.Youtube
	}
	if input.Twitter != "" {
		profile.Social.Twitter = input.Twitter
	}
	if input.Facebook != "" {
		profile.Social.Facebook = input.Facebook
	}
	if input.Linkedin != "" {
		profile.Social.Linkedin = input.Linkedin
	}
	if input.Instagram != "" {
		profile.Social.Instagram = input.Instagram
	}
}

// splitSkills режет строку по запятым и обрезает пробелы,
// порядок и пустые элементы сохраняются
func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		result = append(result, strings.TrimSpace(part))
	}

	return result
}
