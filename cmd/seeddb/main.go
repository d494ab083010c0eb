// Command seeddb writes a small Lahman-style SQLite database with the three
// tables the baseball case study reads: Salaries, Teams, and SeriesPost.
// Output is deterministic for a given -seed so demos and tests can pin
// expected numbers.
//
// Usage:
//
//	go run ./cmd/seeddb -out data/lahman.sqlite -seed 1
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ds4stats/case-studies/internal/adapter/sqlite"
)

const playersPerTeam = 25

// knownTeams maps team ids to league and full name. Ids not listed seed
// into the AL under their raw id.
var knownTeams = map[string]struct {
	league string
	name   string
}{
	"NYA": {"AL", "New York Yankees"},
	"BOS": {"AL", "Boston Red Sox"},
	"TEX": {"AL", "Texas Rangers"},
	"OAK": {"AL", "Oakland Athletics"},
	"LAN": {"NL", "Los Angeles Dodgers"},
	"SFN": {"NL", "San Francisco Giants"},
	"SLN": {"NL", "St. Louis Cardinals"},
	"HOU": {"NL", "Houston Astros"},
}

func main() {
	out := flag.String("out", "", "output path for the SQLite database")
	seed := flag.Int64("seed", 1, "random seed")
	teams := flag.String("teams", "NYA,BOS,TEX,OAK,LAN,SFN,SLN,HOU", "comma-separated team ids")
	from := flag.Int("from", 2010, "first season")
	to := flag.Int("to", 2015, "last season")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		log.Fatal("missing required flag: -out")
	}
	if *from > *to {
		log.Fatalf("invalid season range %d-%d", *from, *to)
	}

	var ids []string
	for _, id := range strings.Split(*teams, ",") {
		id = strings.ToUpper(strings.TrimSpace(id))
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) < 2 {
		log.Fatal("need at least two team ids")
	}

	data := generate(rand.New(rand.NewSource(*seed)), ids, *from, *to)

	if err := write(*out, data); err != nil {
		log.Fatal(err)
	}
	printStats(data)
}

func generate(rng *rand.Rand, ids []string, from, to int) sqlite.SeedData {
	var data sqlite.SeedData

	// Stable spending tiers: earlier ids spend more, with a little jitter.
	budgets := map[string]float64{}
	for i, id := range ids {
		budget := 190e6 - float64(i)*18e6 + rng.Float64()*12e6
		if budget < 45e6 {
			budget = 45e6
		}
		budgets[id] = budget
	}

	for year := from; year <= to; year++ {
		byLeague := map[string][]int{}

		for _, id := range ids {
			league, name := teamInfo(id)
			payroll := budgets[id] * math.Pow(1.04, float64(year-from))

			weights := make([]float64, playersPerTeam)
			var sum float64
			for i := range weights {
				weights[i] = 0.2 + rng.ExpFloat64()
				sum += weights[i]
			}
			for i, w := range weights {
				data.Salaries = append(data.Salaries, sqlite.SalaryRow{
					Year:     year,
					TeamID:   id,
					League:   league,
					PlayerID: fmt.Sprintf("%s%02d%d", strings.ToLower(id), i+1, year%100),
					Salary:   math.Round(payroll * w / sum),
				})
			}

			// Wins track payroll loosely so the fit has a slope to find.
			wins := int(62 + 0.18*payroll/1e6 + rng.NormFloat64()*5)
			if wins < 50 {
				wins = 50
			}
			if wins > 110 {
				wins = 110
			}

			byLeague[league] = append(byLeague[league], len(data.Teams))
			data.Teams = append(data.Teams, sqlite.SeedTeam{
				Year:   year,
				League: league,
				TeamID: id,
				Name:   name,
				Wins:   wins,
				Losses: 162 - wins,
			})
		}

		data.Series = append(data.Series, playoffs(rng, data.Teams, byLeague, year)...)
	}

	return data
}

// playoffs picks two playoff teams per league by wins, plays the league
// championship and the World Series, and sets the postseason flags.
func playoffs(rng *rand.Rand, teams []sqlite.SeedTeam, byLeague map[string][]int, year int) []sqlite.SeedSeries {
	var series []sqlite.SeedSeries
	var champs []int

	for _, league := range []string{"AL", "NL"} {
		idxs := byLeague[league]
		if len(idxs) < 2 {
			continue
		}
		sort.Slice(idxs, func(i, j int) bool { return teams[idxs[i]].Wins > teams[idxs[j]].Wins })

		div, wc := idxs[0], idxs[1]
		teams[div].DivWin = true
		teams[wc].WCWin = true

		winner, loser := div, wc
		if upset(rng, teams[div].Wins, teams[wc].Wins) {
			winner, loser = wc, div
		}
		teams[winner].LgWin = true
		series = append(series, sqlite.SeedSeries{
			Year: year, Round: league[:1] + "LCS",
			Winner: teams[winner].TeamID, Loser: teams[loser].TeamID,
			Wins: 4, Losses: rng.Intn(4),
		})
		champs = append(champs, winner)
	}

	if len(champs) == 2 {
		winner, loser := champs[0], champs[1]
		if upset(rng, teams[winner].Wins, teams[loser].Wins) {
			winner, loser = loser, winner
		}
		teams[winner].WSWin = true
		series = append(series, sqlite.SeedSeries{
			Year: year, Round: "WS",
			Winner: teams[winner].TeamID, Loser: teams[loser].TeamID,
			Wins: 4, Losses: rng.Intn(4),
		})
	}
	return series
}

// upset reports whether the lower seed wins, weighted by win totals.
func upset(rng *rand.Rand, high, low int) bool {
	return rng.Float64() >= float64(high)/float64(high+low)
}

func teamInfo(id string) (league, name string) {
	if info, ok := knownTeams[id]; ok {
		return info.league, info.name
	}
	return "AL", id
}

func write(path string, data sqlite.SeedData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	store, err := sqlite.Open(path, nil)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Seed(context.Background(), data); err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}
	log.Printf("wrote database: %s", path)
	return nil
}

func printStats(data sqlite.SeedData) {
	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d salaries, %d team-seasons, %d series\n",
		len(data.Salaries), len(data.Teams), len(data.Series))

	fmt.Println("\nWorld Series winners:")
	for _, s := range data.Series {
		if s.Round != "WS" {
			continue
		}
		fmt.Printf("  %d %s over %s (%d-%d)\n", s.Year, s.Winner, s.Loser, s.Wins, s.Losses)
	}

	totals := map[string]float64{}
	for _, row := range data.Salaries {
		totals[row.TeamID] += row.Salary
	}
	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if totals[ids[i]] != totals[ids[j]] {
			return totals[ids[i]] > totals[ids[j]]
		}
		return ids[i] < ids[j]
	})
	fmt.Printf("\nTotal payroll:")
	for _, id := range ids {
		fmt.Printf(" %s=$%.0fM", id, totals[id]/1e6)
	}
	fmt.Println()
}
