package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mcdev12/pickbattle/go/internal/dbconfig"
)

const defaultFixturePath = "go/internal/assets/fixtures.json"

// Fixtures mirrors the JSON snapshot
type Fixtures struct {
	Games []GameFixture `json:"games"`
}

type GameFixture struct {
	ID       string `json:"id"`
	Sport    string `json:"sport"`
	HomeName string `json:"home_name"`
	HomeAbbr string `json:"home_abbr"`
	AwayName string `json:"away_name"`
	AwayAbbr string `json:"away_abbr"`
	// StartIn is an offset from now, e.g. "2h" or "-30m"
	StartIn string           `json:"start_in"`
	Spread  *decimal.Decimal `json:"spread,omitempty"`
	Picks   []PickFixture    `json:"picks"`
}

type PickFixture struct {
	ID        string `json:"id"`
	CapperID  string `json:"capper_id"`
	Selection string `json:"selection"`
	Side      string `json:"side,omitempty"`
}

type summary struct {
	inserted int
	skipped  int
	errs     int
}

func loadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read JSON: %w", err)
	}
	var f Fixtures
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	for i, g := range f.Games {
		if _, err := uuid.Parse(g.ID); err != nil {
			return nil, fmt.Errorf("game %d: bad id %q", i, g.ID)
		}
		if _, err := time.ParseDuration(g.StartIn); err != nil {
			return nil, fmt.Errorf("game %s: bad start_in %q", g.ID, g.StartIn)
		}
		for _, p := range g.Picks {
			if p.Side != "" && p.Side != "home" && p.Side != "away" {
				return nil, fmt.Errorf("pick %s: bad side %q", p.ID, p.Side)
			}
		}
	}
	return &f, nil
}

func (g GameFixture) startTime(now time.Time) time.Time {
	d, _ := time.ParseDuration(g.StartIn)
	return now.Add(d).Truncate(time.Minute)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func main() {
	path := defaultFixturePath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// 1) Load the JSON snapshot
	fixtures, err := loadFixtures(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	ctx := context.Background()
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Upsert games and their picks, one transaction per game
	var games, picks summary
	now := time.Now()
	for _, g := range fixtures.Games {
		err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			_, err := tx.Exec(ctx, `
                INSERT INTO games (
                  id, sport, home_team_name, home_team_abbr,
                  away_team_name, away_team_abbr, start_time, status, spread
                ) VALUES ($1,$2,$3,$4,$5,$6,$7,'scheduled',$8)
                ON CONFLICT (id) DO UPDATE SET start_time = EXCLUDED.start_time
            `,
				g.ID, g.Sport, g.HomeName, g.HomeAbbr,
				g.AwayName, g.AwayAbbr, g.startTime(now), decimal.NullDecimal{
					Decimal: decimalOrZero(g.Spread),
					Valid:   g.Spread != nil,
				},
			)
			if err != nil {
				return fmt.Errorf("game %s: %w", g.ID, err)
			}
			games.inserted++

			for _, p := range g.Picks {
				tag, err := tx.Exec(ctx, `
                    INSERT INTO picks (id, game_id, capper_id, pick_type, selection, side, status)
                    VALUES ($1,$2,$3,'spread',$4,$5,'pending')
                    ON CONFLICT (id) DO NOTHING
                `, p.ID, g.ID, p.CapperID, p.Selection, nullable(p.Side))
				if err != nil {
					return fmt.Errorf("pick %s: %w", p.ID, err)
				}
				if tag.RowsAffected() == 1 {
					picks.inserted++
				} else {
					picks.skipped++
				}
			}
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error seeding %v\n", err)
			games.errs++
		}
	}

	// 4) Print summary
	fmt.Printf(
		"Fixture seed complete: games %d upserted, %d errors; picks %d inserted, %d skipped\n",
		games.inserted, games.errs, picks.inserted, picks.skipped,
	)
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
