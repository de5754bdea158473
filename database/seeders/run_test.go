package seeders_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shashiranjanraj/rentaldeploy/app/models"
	"github.com/shashiranjanraj/rentaldeploy/app/services"
	"github.com/shashiranjanraj/rentaldeploy/database/catalog"
	"github.com/shashiranjanraj/rentaldeploy/database/seeders"
	"github.com/shashiranjanraj/rentaldeploy/internal/testdb"
	"github.com/shashiranjanraj/rentaldeploy/pkg/auth"
	"github.com/shashiranjanraj/rentaldeploy/pkg/lock"
)

func okStep(name string, calls *[]string) seeders.Step {
	return seeders.Step{Name: name, Run: func(context.Context) (string, error) {
		*calls = append(*calls, name)
		return name + " done", nil
	}}
}

type recorder struct{ events []string }

func (r *recorder) StepStarted(s seeders.Step, i, n int) { r.events = append(r.events, "start:"+s.Name) }
func (r *recorder) StepFinished(s seeders.Step, res seeders.Result) {
	r.events = append(r.events, "finish:"+s.Name)
}

func TestPipelineRunsAllStepsInOrder(t *testing.T) {
	var calls []string
	rec := &recorder{}

	sum, err := seeders.New(okStep("a", &calls), okStep("b", &calls), okStep("c", &calls)).
		WithReporter(rec).
		Run(context.Background())
	require.NoError(t, err)

	assert.True(t, sum.OK)
	assert.Equal(t, 3, sum.Attempted)
	assert.Equal(t, 3, sum.Succeeded)
	assert.Equal(t, 3, sum.Total)
	assert.Nil(t, sum.Failed())
	assert.Equal(t, []string{"a", "b", "c"}, calls)
	assert.Equal(t, "b done", sum.Results[1].Message)
	assert.Equal(t, []string{"start:a", "finish:a", "start:b", "finish:b", "start:c", "finish:c"}, rec.events)
}

func TestPipelineHaltsOnFirstFailure(t *testing.T) {
	var calls []string
	boom := errors.New("boom")

	sum, err := seeders.New(
		okStep("migrate", &calls),
		seeders.Step{Name: "admin", Run: func(context.Context) (string, error) { return "", boom }},
		okStep("seed", &calls),
	).Run(context.Background())
	require.NoError(t, err)

	assert.False(t, sum.OK)
	assert.Equal(t, 2, sum.Attempted)
	assert.Equal(t, 1, sum.Succeeded)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, []string{"migrate"}, calls)

	failed := sum.Failed()
	require.NotNil(t, failed)
	assert.Equal(t, "admin", failed.Step)
	assert.ErrorIs(t, failed.Err, boom)
	assert.Equal(t, "boom", failed.Error)
}

func TestPipelineRecoversPanics(t *testing.T) {
	var calls []string
	sum, err := seeders.New(
		seeders.Step{Name: "explode", Run: func(context.Context) (string, error) { panic("kaboom") }},
		okStep("never", &calls),
	).Run(context.Background())
	require.NoError(t, err)

	assert.False(t, sum.OK)
	assert.Equal(t, 1, sum.Attempted)
	assert.Empty(t, calls)
	assert.Contains(t, sum.Failed().Error, "panic: kaboom")
}

func TestPipelineStopsWhenContextCancelled(t *testing.T) {
	var calls []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := seeders.New(okStep("a", &calls)).Run(ctx)
	require.NoError(t, err)
	assert.False(t, sum.OK)
	assert.ErrorIs(t, sum.Failed().Err, context.Canceled)
	assert.Empty(t, calls)
}

type heldLocker struct{}

func (heldLocker) Acquire(context.Context) (lock.Release, error) { return nil, lock.ErrLocked }

type countingLocker struct{ acquired, released int }

func (l *countingLocker) Acquire(context.Context) (lock.Release, error) {
	l.acquired++
	return func(context.Context) error { l.released++; return nil }, nil
}

func TestPipelineRefusesToRunWithoutLock(t *testing.T) {
	var calls []string
	sum, err := seeders.New(okStep("a", &calls)).WithLock(heldLocker{}).Run(context.Background())
	require.ErrorIs(t, err, lock.ErrLocked)
	assert.Zero(t, sum.Attempted)
	assert.False(t, sum.OK)
	assert.Empty(t, calls)
}

func TestPipelineReleasesLock(t *testing.T) {
	var calls []string
	l := &countingLocker{}
	_, err := seeders.New(okStep("a", &calls)).WithLock(l).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, l.acquired)
	assert.Equal(t, 1, l.released)
}

func TestDeployPipelineEndToEnd(t *testing.T) {
	ctx := context.Background()
	db := testdb.OpenEmpty(t)

	params := services.AdminParams{Email: "admin@rentalapp.com", Password: "correct-horse", FullName: "Chief Administrator"}
	hasher := auth.BcryptHasher{Cost: bcrypt.MinCost}

	build := func() *seeders.Pipeline {
		return seeders.New(
			seeders.MigrateStep(db),
			seeders.AdminStep(services.NewAdminService(db, hasher), params, nil),
			seeders.SeedStep(services.NewSeedService(db), catalog.Default(), nil),
		)
	}

	sum, err := build().Run(ctx)
	require.NoError(t, err)
	require.True(t, sum.OK, "%+v", sum.Failed())
	assert.Contains(t, sum.Results[0].Message, "applied 2 migration(s)")
	assert.Equal(t, "administrator admin@rentalapp.com created", sum.Results[1].Message)
	assert.Equal(t, "brand systems 9 new/0 existing, accessories 8 new/0 existing, equipment 19 new/0 existing", sum.Results[2].Message)

	sum, err = build().Run(ctx)
	require.NoError(t, err)
	require.True(t, sum.OK)
	assert.Equal(t, "schema up to date", sum.Results[0].Message)
	assert.Equal(t, "administrator admin@rentalapp.com already exists", sum.Results[1].Message)
	assert.Equal(t, "brand systems 0 new/9 existing, accessories 0 new/8 existing, equipment 0 new/19 existing", sum.Results[2].Message)

	var admins int64
	require.NoError(t, db.Model(&models.Account{}).Count(&admins).Error)
	assert.EqualValues(t, 1, admins)
}

func TestAdminStepExposesGeneratedPassword(t *testing.T) {
	db := testdb.Open(t)
	var got services.AdminResult

	step := seeders.AdminStep(
		services.NewAdminService(db, auth.BcryptHasher{Cost: bcrypt.MinCost}),
		services.AdminParams{Email: "ops@rentalapp.com", FullName: "Ops"},
		func(r services.AdminResult) { got = r },
	)
	_, err := step.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.GeneratedPassword, 16)
}

func TestSeedStepHandsOverReport(t *testing.T) {
	db := testdb.Open(t)
	c := catalog.Catalog{
		Equipment: []catalog.Equipment{{
			Category:    "Camera",
			Brand:       "Canon",
			Name:        "EOS R5",
			DailyRate:   2500,
			Condition:   "Excellent",
			BrandSystem: "Canon RF",
		}},
	}

	var got *services.SeedReport
	msg, err := seeders.SeedStep(services.NewSeedService(db), c, func(r *services.SeedReport) { got = r }).Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Warnings, 1)
	assert.Equal(t, "brand systems 0 new/0 existing, accessories 0 new/0 existing, equipment 1 new/0 existing, 1 warning(s)", msg)
}
