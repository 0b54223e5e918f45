// Command meshknn runs a small kNN search demo over the library's
// hand-built L-shaped-room mesh, one run per heuristic variant.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/elektrokombinacija/meshknn-research/config"
	"github.com/elektrokombinacija/meshknn-research/engine"
	"github.com/elektrokombinacija/meshknn-research/fence"
	"github.com/elektrokombinacija/meshknn-research/geom"
	"github.com/elektrokombinacija/meshknn-research/heuristic"
	"github.com/elektrokombinacija/meshknn-research/internal/logging"
	"github.com/elektrokombinacija/meshknn-research/internal/testmesh"
	"github.com/elektrokombinacija/meshknn-research/mesh"
	"github.com/elektrokombinacija/meshknn-research/search"
	"github.com/elektrokombinacija/meshknn-research/spatial"
)

func main() {
	log := logging.New(os.Stderr, slog.LevelInfo)

	cfg, err := config.LoadScenario("scenario.yaml")
	if err != nil {
		log.Error("loading scenario config", "err", err)
		os.Exit(1)
	}
	cfg.K = 2
	log.Info("scenario loaded", "k", cfg.K, "time_limit_micro", cfg.TimeLimitMicro)

	m := testmesh.LRoom()
	start := geom.Point{X: 0.1, Y: 0.1}
	goals := map[int]geom.Point{
		0: {X: 0.9, Y: 0.9},
		1: {X: 0.3, Y: 0.9},
		2: {X: 0.5, Y: 0.1},
	}

	fmt.Println("=== meshknn demo: L-shaped room ===")
	for _, kind := range []config.HeuristicKind{config.HeuristicZero, config.HeuristicTarget, config.HeuristicFence} {
		c := cfg
		c.HeuristicKind = kind
		runDemo(m, start, goals, c, log)
	}
}

func runDemo(m *mesh.Mesh, start geom.Point, goals map[int]geom.Point, cfg config.Scenario, log *slog.Logger) {
	h := buildHeuristic(cfg.HeuristicKind, m, start, goals)
	eng := engine.NewEngine(m, h, 256)
	eng.SetStart(start)
	eng.SetGoals(goals)
	eng.SetK(cfg.K)

	deadline := time.Now().Add(time.Duration(cfg.TimeLimitMicro) * time.Microsecond)
	eng.Search(deadline)

	if err := eng.Err(); err != nil {
		log.Warn("search did not finish in budget", "heuristic", cfg.HeuristicKind, "err", err)
	}

	fmt.Printf("--- heuristic=%s ---\n", cfg.HeuristicKind)
	for k := 0; k < cfg.K; k++ {
		gid := eng.GetGid(k)
		if gid < 0 {
			fmt.Printf("  rank %d: not reached\n", k)
			continue
		}
		fmt.Printf("  rank %d: goal=%d cost=%.4f\n", k, gid, eng.GetCost(k))
	}
	fmt.Printf("  nodes generated=%d pushed=%d popped=%d heuristic_calls=%d search_micro=%.1f\n\n",
		eng.NodesGenerated, eng.NodesPushed, eng.NodesPopped, eng.HeuristicCall, eng.GetSearchMicro())
}

func buildHeuristic(kind config.HeuristicKind, m *mesh.Mesh, start geom.Point, goals map[int]geom.Point) search.Heuristic {
	switch kind {
	case config.HeuristicTarget:
		idx := make(map[spatial.GoalID]geom.Point, len(goals))
		for gid, p := range goals {
			idx[spatial.GoalID(gid)] = p
		}
		return &heuristic.Target{Start: start, Goals: spatial.NewGoalIndex(idx)}
	case config.HeuristicFence:
		dams := fence.BuildDams(m, goals, time.Now().Add(time.Second))
		ids := make([]int, 0, len(goals))
		for gid := range goals {
			ids = append(ids, gid)
		}
		return heuristic.NewFence(dams, ids)
	default:
		return heuristic.Zero{}
	}
}
