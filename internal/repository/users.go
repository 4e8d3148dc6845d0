package repository

import (
	"context"
	"fmt"

	"github.com/khrees2412/talentdesk/internal/gateway"
	"github.com/khrees2412/talentdesk/pkg/models"
)

var (
	accountColumns = []string{"id", "fname", "lname", "email", "number", "role"}
	profileColumns = []string{"auth_id", "score", "job_role", "longevity", "bio", "highest_education", "exp_new"}
)

// Users reads candidate accounts joined with their profiles.
type Users struct {
	g gateway.Gateway
}

func NewUsers(g gateway.Gateway) *Users { return &Users{g: g} }

// Page returns one page of users in profile order. Profiles whose account
// is gone are skipped, so a page can come back short.
func (r *Users) Page(ctx context.Context, offset, limit int) ([]models.UserSummary, error) {
	profiles, err := r.g.Select(ctx, TableProfiles, gateway.Query{
		Columns: []string{"auth_id", "score"},
		Order:   &gateway.Order{Column: "auth_id"},
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}
	if len(profiles) == 0 {
		return []models.UserSummary{}, nil
	}

	ids := make([]any, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.String("auth_id"))
	}
	accounts, err := r.g.Select(ctx, TableAccounts, gateway.Query{
		Columns: accountColumns,
		Filters: []gateway.Filter{gateway.In("id", ids...)},
	})
	if err != nil {
		return nil, fmt.Errorf("select accounts: %w", err)
	}
	byID := make(map[string]models.Account, len(accounts))
	for _, a := range accounts {
		acc := accountFromRow(a)
		byID[acc.ID] = acc
	}

	out := make([]models.UserSummary, 0, len(profiles))
	for _, p := range profiles {
		acc, ok := byID[p.String("auth_id")]
		if !ok {
			continue
		}
		out = append(out, models.UserSummary{Account: acc, Score: p.Int("score")})
	}
	return out, nil
}

// Count is the number of profiles; it paginates the users list.
func (r *Users) Count(ctx context.Context) (int, error) {
	return r.g.Count(ctx, TableProfiles)
}

// Get loads the profile and account for id. Either missing is not found.
func (r *Users) Get(ctx context.Context, id string) (models.UserProfile, error) {
	profiles, err := r.g.Select(ctx, TableProfiles, gateway.Query{
		Columns: profileColumns,
		Filters: []gateway.Filter{gateway.Eq("auth_id", id)},
		Limit:   1,
	})
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("select profile: %w", err)
	}
	prow, err := one(profiles, TableProfiles, id)
	if err != nil {
		return models.UserProfile{}, err
	}
	accounts, err := r.g.Select(ctx, TableAccounts, gateway.Query{
		Columns: accountColumns,
		Filters: []gateway.Filter{gateway.Eq("id", id)},
		Limit:   1,
	})
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("select account: %w", err)
	}
	arow, err := one(accounts, TableAccounts, id)
	if err != nil {
		return models.UserProfile{}, err
	}
	return models.UserProfile{Account: accountFromRow(arow), Profile: profileFromRow(prow)}, nil
}

// Profiles loads every profile with its account, in profile order.
// Profiles without an account are skipped.
func (r *Users) Profiles(ctx context.Context) ([]models.UserProfile, error) {
	profiles, err := r.g.Select(ctx, TableProfiles, gateway.Query{
		Columns: profileColumns,
		Order:   &gateway.Order{Column: "auth_id"},
	})
	if err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}
	if len(profiles) == 0 {
		return []models.UserProfile{}, nil
	}
	ids := make([]any, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.String("auth_id"))
	}
	accounts, err := r.g.Select(ctx, TableAccounts, gateway.Query{
		Columns: accountColumns,
		Filters: []gateway.Filter{gateway.In("id", ids...)},
	})
	if err != nil {
		return nil, fmt.Errorf("select accounts: %w", err)
	}
	byID := make(map[string]models.Account, len(accounts))
	for _, a := range accounts {
		acc := accountFromRow(a)
		byID[acc.ID] = acc
	}
	out := make([]models.UserProfile, 0, len(profiles))
	for _, p := range profiles {
		prof := profileFromRow(p)
		if acc, ok := byID[prof.AuthID]; ok {
			out = append(out, models.UserProfile{Account: acc, Profile: prof})
		}
	}
	return out, nil
}

// Delete removes the account; the profile goes with it on the backend.
func (r *Users) Delete(ctx context.Context, id string) error {
	return r.g.Delete(ctx, TableAccounts, id)
}

// Emails lists every account email, sorted, for the invitee picker.
func (r *Users) Emails(ctx context.Context) ([]string, error) {
	rows, err := r.g.Select(ctx, TableAccounts, gateway.Query{
		Columns: []string{"email"},
		Order:   &gateway.Order{Column: "email"},
	})
	if err != nil {
		return nil, fmt.Errorf("select emails: %w", err)
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if e := row.String("email"); e != "" {
			out = append(out, e)
		}
	}
	return out, nil
}

func accountFromRow(row gateway.Row) models.Account {
	return models.Account{
		ID:        row.String("id"),
		FirstName: row.String("fname"),
		LastName:  row.String("lname"),
		Email:     row.String("email"),
		Phone:     row.String("number"),
		Role:      row.String("role"),
	}
}

func profileFromRow(row gateway.Row) models.Profile {
	return models.Profile{
		AuthID:        row.String("auth_id"),
		Score:         row.Int("score"),
		JobRole:       row.String("job_role"),
		LongevityDays: row.Int("longevity"),
		Bio:           row.String("bio"),
		Education:     row.String("highest_education"),
		Experience:    row.String("exp_new"),
	}
}
