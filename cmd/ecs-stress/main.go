package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/plus3/oxide/ecs"
	"github.com/plus3/oxide/internal/config"
	"github.com/plus3/oxide/internal/logging"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	systemCount := flag.Int("systems", 16, "The number of transfer systems to register.")
	seed := flag.Int64("seed", 1, "Seed for the random component mix.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Profile the run: cpu, mem or allocs.")
	profilePath := flag.String("profile-path", ".", "Directory for profile output.")
	cfg := config.Default()
	cfg.RegisterLogFlags(flag.CommandLine)
	flag.Parse()

	logger, closer, err := logging.New(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closer.Close()

	if *profileMode != "" {
		mode, ok := profileModes[*profileMode]
		if !ok {
			logger.Fatal().Str("profile", *profileMode).Msg("unknown profile mode")
		}
		defer profile.Start(mode, profile.ProfilePath(*profilePath), profile.NoShutdownHook).Stop()
	}

	logger.Info().Msg("Starting ECS stress test...")

	// 1. Setup world, components and systems
	rng := rand.New(rand.NewSource(*seed))
	world := ecs.NewWorld[frame](ecs.WithLogger(logger))
	registerComponents(world)
	registerSystems(world, rng, *systemCount)
	world.LogComponents(zerolog.DebugLevel)
	world.LogSystems(zerolog.DebugLevel)

	// 2. Populate storage with initial entities
	logger.Info().Int("entities", *entityCount).Msg("Populating storage...")
	for i := 0; i < *entityCount; i++ {
		// Spawn an entity with 1 to 5 random components
		spawnRandomEntity(world, rng, rng.Intn(5)+1)
	}
	logger.Info().Msg("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     componentCount,
		Systems:        len(world.SystemNames()),
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", *duration).Msg("Running simulation...")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	tick := &frame{}

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			world.Tick(tick)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
			tick.Tick = totalUpdates
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.FinalEntities = world.Len()
	report.Storage = world.CollectStats()
	report.Scheduler = world.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info().Msg("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("Failed to generate report")
	}
	fmt.Println("--- End of Report ---")

	logger.Info().Msg("Stress test complete.")
}

var profileModes = map[string]func(*profile.Profile){
	"cpu":    profile.CPUProfile,
	"mem":    profile.MemProfile,
	"allocs": profile.MemProfileAllocs,
}
