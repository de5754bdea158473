package services_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/app/models"
	"github.com/shashiranjanraj/rentaldeploy/app/repositories"
	"github.com/shashiranjanraj/rentaldeploy/app/services"
	"github.com/shashiranjanraj/rentaldeploy/database/catalog"
	"github.com/shashiranjanraj/rentaldeploy/internal/testdb"
	"github.com/shashiranjanraj/rentaldeploy/pkg/metrics"
)

func addAdmin(t *testing.T, db *gorm.DB, active bool) {
	t.Helper()
	require.NoError(t, db.Create(&models.Account{
		FullName: "Ops", Email: "ops@rentalapp.com", PasswordHash: "x", Role: models.RoleAdmin, IsActive: active,
	}).Error)
}

func addEquipment(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.Equipment{Category: "Camera", Brand: "Canon", Name: "EOS R5", DailyRate: 2500}).Error)
}

func TestCheckReadinessBoundary(t *testing.T) {
	cases := []struct {
		name      string
		admin     bool
		equipment bool
		ready     bool
		missing   []string
	}{
		{"empty", false, false, false, []string{services.MissingAdmin, services.MissingEquipment}},
		{"admin only", true, false, false, []string{services.MissingEquipment}},
		{"equipment only", false, true, false, []string{services.MissingAdmin}},
		{"both", true, true, true, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := testdb.Open(t)
			if tc.admin {
				addAdmin(t, db, true)
			}
			if tc.equipment {
				addEquipment(t, db)
			}

			rep, err := services.NewStatusService(db).Check(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.ready, rep.Ready)
			assert.Equal(t, tc.missing, rep.Missing)

			want := 0.0
			if tc.ready {
				want = 1
			}
			assert.Equal(t, want, testutil.ToFloat64(metrics.Ready))
		})
	}
}

func TestCheckCountsDefaultCatalog(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	addAdmin(t, db, false)

	_, err := services.NewSeedService(db).Seed(ctx, catalog.Default())
	require.NoError(t, err)

	rep, err := services.NewStatusService(db).Check(ctx)
	require.NoError(t, err)

	require.Len(t, rep.Admins, 1)
	assert.Equal(t, services.AdminInfo{FullName: "Ops", Email: "ops@rentalapp.com", Active: false}, rep.Admins[0])
	assert.EqualValues(t, 19, rep.Equipment.Total)
	assert.EqualValues(t, 9, rep.BrandSystems)
	assert.EqualValues(t, 8, rep.Accessories.Total)
	assert.True(t, rep.Ready)

	assert.Equal(t, []repositories.CategoryCount{
		{Category: "Camera", Count: 4},
		{Category: "Lens", Count: 7},
		{Category: "Light Modifier", Count: 2},
		{Category: "Lighting", Count: 2},
		{Category: "Tripod", Count: 2},
		{Category: "Video Camera", Count: 2},
	}, rep.Equipment.ByCategory)
	assert.Contains(t, rep.Accessories.ByCategory, repositories.CategoryCount{Category: "Battery", Count: 2})
	assert.Contains(t, rep.Accessories.ByCategory, repositories.CategoryCount{Category: "Filter", Count: 2})
}

func TestCheckSurfacesQueryErrors(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, db.Migrator().DropTable(&models.Accessory{}))

	_, err := services.NewStatusService(db).Check(context.Background())
	assert.ErrorContains(t, err, "accessories")
}
