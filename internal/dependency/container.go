// Package dependency wires the monitor's services using go.uber.org/dig.
package dependency

import (
	"go.uber.org/dig"

	"github.com/newswatch/newswatch/internal/agent"
	"github.com/newswatch/newswatch/internal/config"
	"github.com/newswatch/newswatch/internal/monitor"
	"github.com/newswatch/newswatch/internal/providers"
	"github.com/newswatch/newswatch/internal/tools"
)

// Container holds the resolved service singletons for the monitor command.
// Callers use the typed getters; they never need to import dig directly.
type Container struct {
	dispatcher *agent.Dispatcher
	scheduler  *monitor.Scheduler
}

func (c *Container) Dispatcher() *agent.Dispatcher { return c.dispatcher }
func (c *Container) Scheduler() *monitor.Scheduler { return c.scheduler }

// New builds and wires the monitor services for the given options.
func New(opts monitor.Options) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() monitor.Options { return opts }); err != nil {
		return nil, err
	}
	if err := d.Provide(newExecTool); err != nil {
		return nil, err
	}
	if err := d.Provide(newAdapters); err != nil {
		return nil, err
	}
	if err := d.Provide(newDispatcher); err != nil {
		return nil, err
	}
	if err := d.Provide(newScheduler); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(dispatcher *agent.Dispatcher, scheduler *monitor.Scheduler) {
		result = &Container{dispatcher: dispatcher, scheduler: scheduler}
	})
	return result, err
}

func newExecTool() *tools.ExecTool {
	return tools.NewExecTool(config.DataDir(), 0)
}

func newAdapters(execTool *tools.ExecTool) []providers.Adapter {
	return []providers.Adapter{
		providers.NewClaudeAdapter(""),
		providers.NewOpenAIAdapter(execTool),
	}
}

func newDispatcher(adapters []providers.Adapter) *agent.Dispatcher {
	return agent.NewDispatcher(config.DataDir(), adapters...)
}

func newScheduler(opts monitor.Options, dispatcher *agent.Dispatcher) *monitor.Scheduler {
	return monitor.New(opts, dispatcher.RunCycle)
}
