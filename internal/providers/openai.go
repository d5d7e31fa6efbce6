package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/newswatch/newswatch/internal/config"
	"github.com/newswatch/newswatch/internal/shared/textutils"
	"github.com/newswatch/newswatch/internal/tools"
)

// toolDefinitions declares the single capability the model may invoke.
var toolDefinitions = []openai.ChatCompletionToolUnionParam{
	openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name: "run_bash",
		Description: openai.String(
			"Execute a bash/shell command and return stdout and stderr. " +
				"Use this to run newsfresh searches, seen dedup checks, " +
				"and email sends."),
		Parameters: openai.FunctionParameters{
			"type": "object",
			"properties": map[string]any{
				"command": map[string]any{
					"type":        "string",
					"description": "The shell command to execute",
				},
			},
			"required": []string{"command"},
		},
	}),
}

// OpenAIAdapter drives the chat-completions tool loop explicitly: it owns
// the conversation, sends it with the tool schema each turn, executes the
// requested commands, and folds the results back in before the next turn.
type OpenAIAdapter struct {
	exec *tools.ExecTool

	// extraOpts lets tests point the client at a stub server.
	extraOpts []option.RequestOption
}

// NewOpenAIAdapter creates the adapter. execTool runs the model's shell
// commands.
func NewOpenAIAdapter(execTool *tools.ExecTool, opts ...option.RequestOption) *OpenAIAdapter {
	return &OpenAIAdapter{exec: execTool, extraOpts: opts}
}

func (a *OpenAIAdapter) Kind() string { return config.KindOpenAI }

// RunCycle runs up to in.MaxTurns model turns. The conversation is owned by
// this invocation and discarded when it returns; there is no cross-cycle
// memory. Approximate cost is accumulated from usage accounting per turn.
func (a *OpenAIAdapter) RunCycle(ctx context.Context, in CycleInput) (CycleOutcome, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" && len(a.extraOpts) == 0 {
		return CycleOutcome{}, fmt.Errorf("OPENAI_API_KEY not set")
	}

	clientOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, a.extraOpts...)
	client := openai.NewClient(clientOpts...)

	history := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(in.SystemPrompt),
		openai.UserMessage(in.UserPrompt),
	}

	var totalCost float64

	for turn := 1; turn <= in.MaxTurns; turn++ {
		slog.Info("openai turn", "turn", turn, "max", in.MaxTurns)

		resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:    in.Model,
			Messages: history,
			Tools:    toolDefinitions,
		})
		if err != nil {
			return CycleOutcome{Turns: turn, CostUSD: totalCost},
				fmt.Errorf("chat completion: %w", err)
		}

		totalCost += costFor(in.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

		if len(resp.Choices) == 0 {
			return CycleOutcome{Turns: turn, CostUSD: totalCost},
				fmt.Errorf("empty choices in response")
		}
		msg := resp.Choices[0].Message

		if msg.Content != "" {
			slog.Info("agent", "text", textutils.Truncate(msg.Content, 200))
		}

		history = append(history, msg.ToParam())

		// No tool calls means the model is done with this cycle.
		if len(msg.ToolCalls) == 0 {
			return CycleOutcome{Turns: turn, CostUSD: totalCost}, nil
		}

		// Every tool call gets a correlated result message before the
		// next model turn; none may be left unanswered.
		for _, tc := range msg.ToolCalls {
			result := a.dispatchToolCall(ctx, tc.Function.Name, tc.Function.Arguments)
			history = append(history, openai.ToolMessage(tc.ID, result))
		}
	}

	slog.Warn("turn cap reached without the model stopping", "max", in.MaxTurns)
	return CycleOutcome{Turns: in.MaxTurns, CostUSD: totalCost}, nil
}

func (a *OpenAIAdapter) dispatchToolCall(ctx context.Context, name, argsJSON string) string {
	if name != "run_bash" {
		return "Unknown tool: " + name
	}

	var args struct {
		Command string `json:"command"`
	}
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return fmt.Sprintf("[ERROR: bad tool arguments: %v]", err)
	}

	slog.Info("bash", "command", textutils.Truncate(args.Command, 120))
	result := a.exec.Execute(ctx, args.Command)
	slog.Info("result", "output", textutils.Truncate(result, 200))
	return result
}
