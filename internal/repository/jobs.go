package repository

import (
	"context"
	"fmt"

	"github.com/khrees2412/talentdesk/internal/gateway"
	"github.com/khrees2412/talentdesk/pkg/models"
)

var jobColumns = []string{"id", "job_name", "job_desc", "job_req", "is_active"}

// Jobs manages job postings.
type Jobs struct {
	g gateway.Gateway
}

func NewJobs(g gateway.Gateway) *Jobs { return &Jobs{g: g} }

// Page returns postings ordered by id.
func (r *Jobs) Page(ctx context.Context, offset, limit int) ([]models.Job, error) {
	rows, err := r.g.Select(ctx, TableJobs, gateway.Query{
		Columns: jobColumns,
		Order:   &gateway.Order{Column: "id"},
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("select jobs: %w", err)
	}
	out := make([]models.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, jobFromRow(row))
	}
	return out, nil
}

func (r *Jobs) Count(ctx context.Context) (int, error) {
	return r.g.Count(ctx, TableJobs)
}

func (r *Jobs) CountActive(ctx context.Context) (int, error) {
	return r.g.Count(ctx, TableJobs, gateway.Eq("is_active", true))
}

func (r *Jobs) Get(ctx context.Context, id string) (models.Job, error) {
	rows, err := r.g.Select(ctx, TableJobs, gateway.Query{
		Columns: jobColumns,
		Filters: []gateway.Filter{gateway.Eq("id", idArg(id))},
		Limit:   1,
	})
	if err != nil {
		return models.Job{}, fmt.Errorf("select job: %w", err)
	}
	row, err := one(rows, TableJobs, id)
	if err != nil {
		return models.Job{}, err
	}
	return jobFromRow(row), nil
}

// Create inserts a posting; new postings are active.
func (r *Jobs) Create(ctx context.Context, job models.Job) (models.Job, error) {
	row, err := r.g.Insert(ctx, TableJobs, gateway.Row{
		models.JobFieldName:         job.Name,
		models.JobFieldDescription:  job.Description,
		models.JobFieldRequirements: job.Requirements,
		"is_active":                 true,
	})
	if err != nil {
		return models.Job{}, err
	}
	return jobFromRow(row), nil
}

// Update writes the editable fields of job.
func (r *Jobs) Update(ctx context.Context, job models.Job) (models.Job, error) {
	patch := gateway.Row{}
	for _, f := range job.EditableFields() {
		patch[f] = job.FieldValue(f)
	}
	row, err := r.g.Update(ctx, TableJobs, idArg(job.ID), patch)
	if err != nil {
		return models.Job{}, err
	}
	return jobFromRow(row), nil
}

// Toggle writes the negation of job's active flag and returns the stored row.
func (r *Jobs) Toggle(ctx context.Context, job models.Job) (models.Job, error) {
	row, err := r.g.Update(ctx, TableJobs, idArg(job.ID), gateway.Row{"is_active": !job.IsActive})
	if err != nil {
		return models.Job{}, err
	}
	return jobFromRow(row), nil
}

func (r *Jobs) Delete(ctx context.Context, id string) error {
	return r.g.Delete(ctx, TableJobs, idArg(id))
}

func jobFromRow(row gateway.Row) models.Job {
	return models.Job{
		ID:           row.String("id"),
		Name:         row.String(models.JobFieldName),
		Description:  row.String(models.JobFieldDescription),
		Requirements: row.String(models.JobFieldRequirements),
		IsActive:     row.Bool("is_active", true),
	}
}
