package profileRepo

import "stayflow/models"

// ProfileRepository persists the latest derived guest-profile snapshot per
// guest and the per-day revenue summaries. Profiles are a derived view;
// the documents here are merge-upserted snapshots, never the source of truth.
type ProfileRepository interface {
	UpsertProfile(p *models.GuestProfile) error
	GetProfiles() ([]models.GuestProfile, error)

	UpsertSummary(s *models.RevenueSummary) error
	GetSummaries(from, to string) ([]models.RevenueSummary, error)
}
