package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/utsdev/horagen/internal/provider"
	"github.com/utsdev/horagen/internal/schedule"
	"github.com/utsdev/horagen/internal/sink"
	"github.com/utsdev/horagen/pkg/config"
	"github.com/utsdev/horagen/pkg/logger"
)

func main() {
	var (
		snapshotFile = flag.String("snapshot", "", "read the input snapshot from a JSON file instead of the provider API")
		persist      = flag.Bool("persist", false, "send generated classes to the persistence sink")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	var source provider.Provider = provider.NewClient(cfg.ProviderBaseURL, nil)
	if *snapshotFile != "" {
		source = provider.FileProvider{Path: *snapshotFile}
	}

	ctx := context.Background()
	snapshot, warnings, err := source.Snapshot(ctx)
	if err != nil {
		logr.Fatal("cannot load snapshot", zap.Error(err))
	}
	for _, warning := range warnings {
		logr.Warn("provider record dropped", zap.String("reason", warning))
	}

	scheduler := schedule.NewScheduler(nil, schedule.Config{
		MinimumEnrollment: cfg.MinimumEnrollment,
		SolverBudget:      cfg.SolverBudget,
		Weights: schedule.ObjectiveWeights{
			Coverage: cfg.CoverageWeight,
			Score:    cfg.ScoreWeight,
		},
	}, logr)

	result := scheduler.Run(ctx, snapshot)

	if *persist && len(result.Classes) > 0 {
		scheduler.Persist(ctx, sink.NewClient(cfg.SinkBaseURL, nil), &result)
	}

	render(result)

	if len(result.Classes) == 0 && len(result.Errors) > 0 {
		os.Exit(1)
	}
}

func render(result schedule.Result) {
	fmt.Printf("Status: %v, candidate variables: %d, objective: %.1f\n", result.Status, result.Variables, result.Objective)

	classes := slices.Clone(result.Classes)
	slices.SortFunc(classes, func(a, b schedule.GeneratedClass) int {
		if a.Day != b.Day {
			return int(a.Day) - int(b.Day)
		}
		return int(a.Start) - int(b.Start)
	})
	for _, class := range classes {
		fmt.Printf("Group: %v, Day: %v, %v-%v, Subject: %v, Room: %v, Teacher: %v, Students: %v\n",
			class.Group, class.Day, class.Start, class.End, class.SubjectID, class.RoomID, class.TeacherID, class.Enrolled)
	}

	for _, warning := range result.Warnings {
		fmt.Printf("Warning: %v\n", warning)
	}
	for _, err := range result.Errors {
		fmt.Printf("Error: %v\n", err)
	}
}
