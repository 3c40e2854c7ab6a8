// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/momeni/vehicles-api/internal/test/dbcontainer"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/carsrp"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/migration"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/pricesrp"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/schemarp"
	"github.com/momeni/vehicles-api/pkg/adapter/hash/scram"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/repo"
	"github.com/momeni/vehicles-api/pkg/core/usecase/migrationuc"
)

type PostgresTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pool *postgres.Pool
}

func TestPostgresTestSuite(t *testing.T) {
	ctx := context.Background()
	_, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &PostgresTestSuite{Ctx: ctx, Pool: pool})
}

func (pgts *PostgresTestSuite) SetupSuite() {
	pgts.Equal(postgres.DialectPostgres, pgts.Pool.Dialect())
	for _, c := range []string{
		migrationuc.ComponentVehicles, migrationuc.ComponentPricing,
	} {
		i, err := migration.New(pgts.Pool, c, migration.WithPriceSeed(3, "USD"))
		pgts.Require().NoError(err)
		pgts.Require().NoError(i.Migrate(pgts.Ctx), "migrating %s", c)
		pgts.Require().NoError(i.InitDevData(pgts.Ctx), "seeding %s", c)
	}
}

func (pgts *PostgresTestSuite) TestSeededData() {
	err := pgts.Pool.Conn(pgts.Ctx, func(ctx context.Context, c repo.Conn) error {
		cars, err := carsrp.New().Conn(c).List(ctx)
		pgts.Require().NoError(err)
		pgts.Len(cars, 1)
		prices, err := pricesrp.New().Conn(c).List(ctx)
		pgts.Require().NoError(err)
		pgts.Len(prices, 3)
		return nil
	})
	pgts.NoError(err)
}

func (pgts *PostgresTestSuite) TestPriceConflictsAreClassified() {
	err := pgts.Pool.Conn(pgts.Ctx, func(ctx context.Context, c repo.Conn) error {
		_, err := pricesrp.New().Conn(c).Save(ctx, &model.Price{
			VehicleID: 1, Currency: "USD", Amount: decimal.NewFromInt(1),
		})
		return err
	})
	pgts.True(cerr.HasStatus(err, http.StatusConflict), "err=%v", err)
}

func (pgts *PostgresTestSuite) TestCreateRoleAndGrant() {
	r := schemarp.New("_pgts", scram.SHA256())
	err := pgts.Pool.Conn(pgts.Ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := r.Tx(tx)
			if err := q.CreateRoleIfNotExists(ctx, repo.NormalRole); err != nil {
				return err
			}
			if err := q.CreateRoleIfNotExists(ctx, repo.NormalRole); err != nil {
				return err
			}
			if err := q.GrantPrivileges(ctx, repo.NormalRole); err != nil {
				return err
			}
			return q.ChangePasswords(
				ctx, []repo.Role{repo.NormalRole}, []string{"s3cret"},
			)
		})
	})
	pgts.Require().NoError(err)
	err = pgts.Pool.Conn(pgts.Ctx, func(ctx context.Context, c repo.Conn) error {
		rows, err := c.Query(ctx,
			"SELECT rolpassword FROM pg_authid WHERE rolname = $1",
			"vehapi_pgts",
		)
		pgts.Require().NoError(err)
		defer rows.Close()
		pgts.Require().True(rows.Next())
		var h string
		pgts.Require().NoError(rows.Scan(&h))
		pgts.Regexp(`^SCRAM-SHA-256\$15000:`, h)
		return rows.Err()
	})
	pgts.NoError(err)
}
