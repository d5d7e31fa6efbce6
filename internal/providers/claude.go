package providers

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/newswatch/newswatch/internal/config"
	"github.com/newswatch/newswatch/internal/shared/textutils"
)

// ClaudeAdapter wraps the claude CLI, a backend that manages its own
// internal tool-execution loop: the CLI decides when to invoke its Bash
// tool and handles multi-turn looping opaquely. The adapter's job is to
// launch it with the right prompts and consume the streamed message events.
type ClaudeAdapter struct {
	binPath string
}

// NewClaudeAdapter creates the adapter. binPath is the claude CLI binary
// (empty = "claude" resolved from PATH).
func NewClaudeAdapter(binPath string) *ClaudeAdapter {
	return &ClaudeAdapter{binPath: textutils.StringOrDefault(binPath, "claude")}
}

func (a *ClaudeAdapter) Kind() string { return config.KindClaude }

// streamEvent is the subset of the claude CLI's stream-json events the
// adapter cares about: assistant text blocks and the final result line.
type streamEvent struct {
	Type    string `json:"type"`
	Message struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
	TotalCostUSD float64 `json:"total_cost_usd"`
	NumTurns     int     `json:"num_turns"`
	IsError      bool    `json:"is_error"`
	Result       string  `json:"result"`
}

// RunCycle launches the CLI with the Bash tool pre-authorized and streams
// its events until it exits. Text events are logged as 200-char previews;
// the result event supplies turn count and cost for the cycle summary.
func (a *ClaudeAdapter) RunCycle(ctx context.Context, in CycleInput) (CycleOutcome, error) {
	bin, err := exec.LookPath(a.binPath)
	if err != nil {
		return CycleOutcome{}, fmt.Errorf("claude CLI not found (%s): %w", a.binPath, err)
	}

	args := []string{
		"--print",
		"--verbose",
		"--output-format", "stream-json",
		"--model", in.Model,
		"--max-turns", strconv.Itoa(in.MaxTurns),
		"--allowedTools", "Bash",
		"--permission-mode", "bypassPermissions",
		"--append-system-prompt", in.SystemPrompt,
		in.UserPrompt,
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = in.WorkDir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return CycleOutcome{}, fmt.Errorf("claude stdout pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return CycleOutcome{}, fmt.Errorf("start claude: %w", err)
	}

	var outcome CycleOutcome
	sawResult := false

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var ev streamEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			continue
		}
		switch ev.Type {
		case "assistant":
			for _, block := range ev.Message.Content {
				if block.Type == "text" && block.Text != "" {
					slog.Info("agent", "text", textutils.Truncate(block.Text, 200))
				}
			}
		case "result":
			sawResult = true
			outcome.Turns = ev.NumTurns
			outcome.CostUSD = ev.TotalCostUSD
			if ev.IsError {
				slog.Warn("claude reported an error result", "result", textutils.Truncate(ev.Result, 200))
			}
		}
	}
	scanErr := scanner.Err()

	if err := cmd.Wait(); err != nil {
		return outcome, fmt.Errorf("claude exited: %w (stderr: %s)",
			err, textutils.Truncate(strings.TrimSpace(stderr.String()), 300))
	}
	if scanErr != nil {
		return outcome, fmt.Errorf("read claude stream: %w", scanErr)
	}
	if !sawResult {
		return outcome, fmt.Errorf("claude stream ended without a result event")
	}
	return outcome, nil
}
