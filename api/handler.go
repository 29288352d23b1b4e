package api

import (
	"bytes"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/util"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ComparisonChart(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	comparison, err := s.compare(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(responses.ComparisonResponse{
		FirstComeFirstServe: comparison[0],
		ShortestJobFirst:    comparison[1],
		RoundRobin:          comparison[2],
	})
}

func (s *SchedulerHandlerImpl) ComparisonChart(ctx *fiber.Ctx) error {
	comparison, err := s.compare(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var buf bytes.Buffer
	if err := report.WriteChart(&buf, "png", comparison); err != nil {
		return errorResponse(ctx, err)
	}
	ctx.Type("png")
	return ctx.Send(buf.Bytes())
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	quantum := s.quantum(request)
	log.Println("running", alg, "algorithm on", len(request.Jobs), "jobs, timeQuantum =", quantum)
	result, err := schedulers.Schedule(alg, request.Processes(), quantum)
	if err != nil {
		return errorResponse(ctx, err)
	}
	response, err := schedulers.GenerateResponse(result)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) compare(ctx *fiber.Ctx) ([]responses.ScheduleResponse, error) {
	request, err := parseRequest(ctx)
	if err != nil {
		return nil, err
	}

	quantum := s.quantum(request)
	log.Println("comparing algorithms on", len(request.Jobs), "jobs, timeQuantum =", quantum)
	results, err := schedulers.CompareAll(request.Processes(), quantum)
	if err != nil {
		return nil, err
	}
	return schedulers.GenerateComparison(results)
}

// quantum prefers the request's time quantum and falls back to the configured one.
func (s *SchedulerHandlerImpl) quantum(request *requests.ScheduleRequests) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

var errInvalidRequest = errors.New("invalid request format")

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		log.Println("body parse failed:", err)
		return nil, errInvalidRequest
	}
	return &request, nil
}

func errorResponse(ctx *fiber.Ctx, err error) error {
	var (
		invalidProcess *core.InvalidProcessError
		invalidQuantum *schedulers.InvalidQuantumError
		undefined      *util.UndefinedAverageError
	)
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errInvalidRequest),
		errors.As(err, &invalidProcess),
		errors.As(err, &invalidQuantum),
		errors.As(err, &undefined):
		status = fiber.StatusBadRequest
	}
	if status == fiber.StatusInternalServerError {
		log.Println("can not process request:", err)
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
