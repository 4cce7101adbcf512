package schedule

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/utsdev/horagen/internal/cp"
)

// Config governs one scheduling run.
type Config struct {
	// MinimumEnrollment is the smallest subject enrollment that may form a
	// class.
	MinimumEnrollment int
	// SolverBudget bounds the solver's search time; zero means unbounded.
	SolverBudget time.Duration
	// Weights tunes the objective; the zero value is replaced by
	// DefaultWeights.
	Weights ObjectiveWeights
	// LabelSeed seeds group-label generation; zero picks a clock seed.
	LabelSeed int64
}

const DefaultMinimumEnrollment = 25

func DefaultConfig() Config {
	return Config{
		MinimumEnrollment: DefaultMinimumEnrollment,
		Weights:           DefaultWeights(),
	}
}

// Result is the structured outcome of one run. Row-level and per-class
// failures accumulate in Warnings and Errors; the caller never sees a
// partial, ambiguous state.
type Result struct {
	Status    cp.Status        `json:"status"`
	Classes   []GeneratedClass `json:"generated_classes"`
	Warnings  []string         `json:"warnings"`
	Errors    []string         `json:"errors"`
	Variables int              `json:"variables"`
	Objective float64          `json:"objective"`
}

// ClassSink receives generated classes one at a time, e.g. a remote
// "create class" endpoint.
type ClassSink interface {
	CreateClass(ctx context.Context, class GeneratedClass) error
}

// Scheduler runs the assignment engine as a single, non-reentrant
// transaction: one repository snapshot, one variable space, one solve, one
// extraction pass. Concurrent runs over different snapshots need no
// synchronization.
type Scheduler struct {
	solver cp.Solver
	cfg    Config
	log    *zap.Logger
}

func NewScheduler(solver cp.Solver, cfg Config, log *zap.Logger) *Scheduler {
	if solver == nil {
		solver = cp.NewSolver()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Weights == (ObjectiveWeights{}) {
		cfg.Weights = DefaultWeights()
	}
	if cfg.MinimumEnrollment < 0 {
		cfg.MinimumEnrollment = DefaultMinimumEnrollment
	}
	return &Scheduler{solver: solver, cfg: cfg, log: log}
}

// Run builds the model from a snapshot, solves it and extracts the classes.
func (s *Scheduler) Run(ctx context.Context, snapshot Snapshot) Result {
	repo := BuildRepository(snapshot)
	result := Result{Status: cp.StatusUnknown, Warnings: repo.Warnings}
	for _, warning := range repo.Warnings {
		s.log.Warn("record dropped", zap.String("reason", warning))
	}

	if len(repo.Slots) == 0 || len(repo.Rooms) == 0 || len(repo.Capabilities) == 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("%v: slots=%d rooms=%d capabilities=%d",
			ErrEmptyModel, len(repo.Slots), len(repo.Rooms), len(repo.Capabilities)))
		return result
	}

	space := BuildVariableSpace(repo)
	result.Variables = space.Size()
	s.log.Info("variable space built",
		zap.Int("slots", len(repo.SlotIDs)),
		zap.Int("rooms", len(repo.RoomIDs)),
		zap.Int("capabilities", len(repo.CapabilityIDs)),
		zap.Int("variables", space.Size()),
	)

	model := cp.NewModel(space.Size())
	for _, constraint := range Constraints(s.cfg.MinimumEnrollment) {
		constraint.Post(model, space, repo)
		s.log.Debug("constraint posted", zap.String("constraint", constraint.Name()))
	}
	BuildObjective(model, space, repo, s.cfg.Weights)

	solveCtx := ctx
	if s.cfg.SolverBudget > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, s.cfg.SolverBudget)
		defer cancel()
	}
	solution, err := s.solver.Solve(solveCtx, model)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("solver failed: %v", err))
		return result
	}
	result.Status = solution.Status
	result.Objective = solution.Objective
	s.log.Info("solver finished",
		zap.Stringer("status", solution.Status),
		zap.Float64("objective", solution.Objective),
	)

	switch solution.Status {
	case cp.StatusInfeasible:
		result.Errors = append(result.Errors, ErrInfeasibleModel.Error())
		return result
	case cp.StatusUnknown:
		result.Errors = append(result.Errors, ErrSolverBudgetExhausted.Error())
		return result
	}

	seed := s.cfg.LabelSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	classes, warnings, errs := extractClasses(solution, space, repo, s.cfg.MinimumEnrollment, newGroupLabeler(seed))
	result.Classes = classes
	result.Warnings = append(result.Warnings, warnings...)
	result.Errors = append(result.Errors, errs...)
	return result
}

// Persist hands each generated class to the sink. A rejected class is
// recorded as an error on the result; the remaining classes are still sent.
func (s *Scheduler) Persist(ctx context.Context, sink ClassSink, result *Result) {
	for _, class := range result.Classes {
		if err := sink.CreateClass(ctx, class); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%v: group %s: %v", ErrPersistence, class.Group, err))
			s.log.Error("class not persisted", zap.String("group", class.Group), zap.Error(err))
			continue
		}
		s.log.Info("class persisted", zap.String("group", class.Group))
	}
}
