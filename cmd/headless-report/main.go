package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Cannon-Ball/internal/cannon"
)

type runStats struct {
	runIndex int
	seed     int64
	policy   string

	ticks    int
	gameOver bool
	score    int
	level    int
	shots    int
	hits     int

	bounces int
	landed  int
	refills int
	tntHits int

	firstHitTick     int
	firstLevelUpTick int
	levelTicks       []int // tick each level-up happened at
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var policy string

	flag.IntVar(&runs, "runs", 5, "number of headless games")
	flag.IntVar(&ticks, "ticks", 36000, "tick limit per game")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&policy, "policy", "tracker", "autoplay policy (tracker|random)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if _, err := newPolicy(policy, 0); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Cannon Ball Report ===\n")
	fmt.Printf("policy=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", policy, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		p, _ := newPolicy(policy, seed)
		stats := runGame(i+1, seed, ticks, policy, p)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func newPolicy(name string, seed int64) (cannon.Policy, error) {
	switch name {
	case "tracker":
		return &cannon.TrackerPolicy{}, nil
	case "random":
		return cannon.NewRandomPolicy(seed), nil
	}
	return nil, fmt.Errorf("unsupported policy %q (supported: tracker, random)", name)
}

func runGame(runIndex int, seed int64, ticks int, policyName string, p cannon.Policy) runStats {
	ts := cannon.NewTestSim(cannon.WithSeed(seed))
	n := ts.RunPolicy(p, ticks)
	sm := ts.Session.Summary()
	return collectStats(runIndex, seed, policyName, n, sm, ts.Log.Entries())
}

func collectStats(runIndex int, seed int64, policyName string, ticks int, sm cannon.Summary, entries []cannon.LogEntry) runStats {
	rs := runStats{
		runIndex:         runIndex,
		seed:             seed,
		policy:           policyName,
		ticks:            ticks,
		gameOver:         sm.Screen == cannon.GameOver,
		score:            sm.Score,
		level:            sm.Level,
		shots:            sm.Shots,
		hits:             sm.Hits,
		firstHitTick:     firstTick(entries, "hit", "target", ""),
		firstLevelUpTick: firstTick(entries, "level", "up", ""),
	}
	for _, e := range entries {
		switch e.Category {
		case "bounce":
			rs.bounces++
		case "land":
			rs.landed++
		case "ammo":
			if e.Key == "refill" {
				rs.refills++
			}
		case "hit":
			if strings.HasPrefix(e.Value, cannon.TNT.String()) {
				rs.tntHits++
			}
		case "level":
			rs.levelTicks = append(rs.levelTicks, e.Tick)
		}
	}
	return rs
}

func firstTick(entries []cannon.LogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

// accuracy is hits per shot; a single ball can clear several targets.
func accuracy(hits, shots int) float64 {
	if shots <= 0 {
		return 0
	}
	return float64(hits) / float64(shots)
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome: game_over=%t ticks=%d duration=%s\n",
		rs.gameOver, rs.ticks, cannon.TicksToDuration(rs.ticks))
	fmt.Printf("score=%d level=%d shots=%d hits=%d accuracy=%.2f tnt_hits=%d\n",
		rs.score, rs.level, rs.shots, rs.hits, accuracy(rs.hits, rs.shots), rs.tntHits)
	fmt.Printf("event_totals: bounce=%d land=%d refill=%d\n", rs.bounces, rs.landed, rs.refills)
	fmt.Printf("phase_markers: first_hit=%d first_level_up=%d level_ups=%s\n",
		rs.firstHitTick, rs.firstLevelUpTick, joinTicks(rs.levelTicks))
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalScore := 0
	totalShots := 0
	totalHits := 0
	totalBounces := 0
	totalRefills := 0
	gameOvers := 0
	hitTicks := make([]int, 0, len(all))
	levelUpTicks := make([]int, 0, len(all))
	levels := map[int]int{}

	for _, rs := range all {
		totalScore += rs.score
		totalShots += rs.shots
		totalHits += rs.hits
		totalBounces += rs.bounces
		totalRefills += rs.refills
		if rs.gameOver {
			gameOvers++
		}
		if rs.firstHitTick >= 0 {
			hitTicks = append(hitTicks, rs.firstHitTick)
		}
		if rs.firstLevelUpTick >= 0 {
			levelUpTicks = append(levelUpTicks, rs.firstLevelUpTick)
		}
		levels[rs.level]++
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d game_overs=%d\n", len(all), gameOvers)
	fmt.Printf("avg_per_run: score=%.1f shots=%.1f hits=%.1f bounces=%.1f refills=%.1f\n",
		avg(totalScore, len(all)), avg(totalShots, len(all)), avg(totalHits, len(all)),
		avg(totalBounces, len(all)), avg(totalRefills, len(all)))
	fmt.Printf("overall_accuracy=%.2f\n", accuracy(totalHits, totalShots))
	fmt.Printf("phase_marker_avg_ticks: first_hit=%s first_level_up=%s\n",
		avgTickString(hitTicks), avgTickString(levelUpTicks))
	fmt.Printf("final_levels: %s\n", levelHistogram(levels))

	if best, ok := bestRun(all); ok {
		fmt.Printf("best_run: %d (seed=%d score=%d level=%d)\n", best.runIndex, best.seed, best.score, best.level)
	}
}

// bestRun returns the highest-scoring run, the earliest on ties.
func bestRun(all []runStats) (runStats, bool) {
	if len(all) == 0 {
		return runStats{}, false
	}
	best := all[0]
	for _, rs := range all[1:] {
		if rs.score > best.score {
			best = rs
		}
	}
	return best, true
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func levelHistogram(levels map[int]int) string {
	if len(levels) == 0 {
		return "none"
	}
	keys := make([]int, 0, len(levels))
	for k := range levels {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("L%d×%d", k, levels[k]))
	}
	return strings.Join(parts, " ")
}

func joinTicks(ticks []int) string {
	if len(ticks) == 0 {
		return "none"
	}
	parts := make([]string, len(ticks))
	for i, t := range ticks {
		parts[i] = fmt.Sprintf("%d", t)
	}
	return strings.Join(parts, ",")
}
