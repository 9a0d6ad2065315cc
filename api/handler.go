package api

import (
	"errors"
	"log/slog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	PriorityNonPreemptive(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger, recorder *metrics.Recorder) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger, recorder: recorder}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) PriorityNonPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

// Simulate takes the algorithm from the request body.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	algorithm, err := schedulers.ParseAlgorithm(request.Algorithm)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return s.run(ctx, request, algorithm)
}

// AllAlgorithms runs every algorithm on the submitted processes side by side.
// Priority algorithms are included only when every process carries a priority.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}

	algorithms := make([]schedulers.Algorithm, 0, len(schedulers.Algorithms()))
	for _, algorithm := range schedulers.Algorithms() {
		if algorithm.UsesPriority() && !hasPriorities(request.Processes) {
			continue
		}
		if err := request.Validate(algorithm); err != nil {
			return s.reject(ctx, algorithm, err)
		}
		algorithms = append(algorithms, algorithm)
	}

	comparisons, err := schedulers.CompareAlgorithms(request.Specs(), request.Options(), algorithms...)
	if err != nil {
		return s.reject(ctx, "all", err)
	}
	for _, c := range comparisons {
		s.recorder.ObserveSimulation(string(c.Algorithm), c.Result)
	}

	response := responses.NewCompareResponse(responses.NewRunId(), comparisons)
	s.logger.Info("compared algorithms",
		"run_id", response.RunId,
		"algorithms", len(comparisons),
		"best_waiting_time", response.BestWaitingTime)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	return s.run(ctx, request, algorithm)
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, request *requests.ScheduleRequest, algorithm schedulers.Algorithm) error {
	if err := request.Validate(algorithm); err != nil {
		return s.reject(ctx, algorithm, err)
	}

	result, err := schedulers.Simulate(request.Specs(), algorithm, request.Options())
	if err != nil {
		return s.reject(ctx, algorithm, err)
	}
	s.recorder.ObserveSimulation(string(algorithm), result)

	response := responses.NewScheduleResponse(responses.NewRunId(), algorithm, result)
	s.logger.Info("simulated",
		"run_id", response.RunId,
		"algorithm", string(algorithm),
		"processes", len(request.Processes),
		"average_waiting_time", response.AverageWaitingTime)
	return ctx.JSON(response)
}

// parseRequest decodes the body and fills in configured defaults for omitted
// algorithm parameters.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	request := new(requests.ScheduleRequest)
	if err := ctx.BodyParser(request); err != nil {
		return nil, err
	}
	if request.TimeQuantum == 0 {
		request.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	if request.LevelsTimeQuantum == nil {
		request.LevelsTimeQuantum = s.config.MultilevelFeedbackQueueLevelsTimeQuantum
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) reject(ctx *fiber.Ctx, algorithm schedulers.Algorithm, err error) error {
	s.recorder.ObserveFailure(string(algorithm))
	s.logger.Warn("rejected simulation", "algorithm", string(algorithm), "error", err)
	if errors.Is(err, core.ErrInvalidInput) || errors.Is(err, schedulers.ErrUnknownAlgorithm) {
		return badRequest(ctx, err.Error())
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(responses.ErrorResponse{Error: "can not process request"})
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: message})
}

func hasPriorities(processes []requests.Process) bool {
	for _, p := range processes {
		if p.Priority == nil {
			return false
		}
	}
	return true
}
