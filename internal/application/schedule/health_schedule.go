package schedule

import (
	"context"

	"github.com/robfig/cron/v3"

	"go-health/internal/domain/model"
	"go-health/internal/domain/usecase/probe"
	"go-health/pkg/log"
	"go-health/pkg/msg"
	"go-health/pkg/resource"
)

// HealthScheduler periodically logs the aggregate status of every
// configured group, giving operators a heartbeat in the logs even when
// nothing is polling the HTTP endpoints.
type HealthScheduler struct {
	cron    *cron.Cron
	useCase probe.UseCase
}

func NewHealthScheduler(useCase probe.UseCase) *HealthScheduler {
	return &HealthScheduler{cron: cron.New(), useCase: useCase}
}

// InitHealthScheduleTasks initializes the summary task from the
// app.health.summary.cron expression.
func (scheduler *HealthScheduler) InitHealthScheduleTasks() {
	_, err := scheduler.cron.AddFunc(resource.GetString("app.health.summary.cron"), scheduler.LogSummary)

	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
}

// Stop halts the scheduler; a running summary finishes first.
func (scheduler *HealthScheduler) Stop() {
	scheduler.cron.Stop()
}

// LogSummary queries every group as an authorized caller and logs the
// aggregate plus the names of any non-UP components.
func (scheduler *HealthScheduler) LogSummary() {
	for _, groupName := range scheduler.useCase.Groups() {
		_, response, err := scheduler.useCase.Query(context.Background(), groupName, model.Caller{Authorized: true})
		if err != nil {
			log.Errorf(msg.GetMessage("health.summary.failed", groupName, err))
			continue
		}

		var unhealthy []string
		for name, component := range response.Components {
			if component.Status != model.StatusUp {
				unhealthy = append(unhealthy, name)
			}
		}

		if len(unhealthy) > 0 {
			log.Warnf(msg.GetMessage("health.summary.degraded", groupName, response.Status, unhealthy))
		} else {
			log.Infof(msg.GetMessage("health.summary.ok", groupName, response.Status))
		}
	}
}
