package providers

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFakeClaude installs a shell script that echoes the stream-json lines
// a real claude CLI run would emit, and returns its path.
func writeFakeClaude(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "claude")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write fake claude: %v", err)
	}
	return path
}

func TestClaudeRunCycle_ParsesResultEvent(t *testing.T) {
	bin := writeFakeClaude(t, `
cat <<'EOF'
{"type":"assistant","message":{"content":[{"type":"text","text":"Checking profiles now."}]}}
{"type":"result","total_cost_usd":0.0423,"num_turns":7,"is_error":false,"result":"done"}
EOF
`)
	a := NewClaudeAdapter(bin)

	out, err := a.RunCycle(context.Background(), CycleInput{
		Model: "claude-haiku-4-5-20251001", MaxTurns: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Turns != 7 {
		t.Errorf("expected 7 turns, got %d", out.Turns)
	}
	if out.CostUSD != 0.0423 {
		t.Errorf("expected cost 0.0423, got %v", out.CostUSD)
	}
}

func TestClaudeRunCycle_SkipsMalformedLines(t *testing.T) {
	bin := writeFakeClaude(t, `
cat <<'EOF'
not json at all
{"type":"system","subtype":"init"}
{"type":"result","total_cost_usd":0.01,"num_turns":2,"is_error":false}
EOF
`)
	a := NewClaudeAdapter(bin)

	out, err := a.RunCycle(context.Background(), CycleInput{Model: "m", MaxTurns: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Turns != 2 {
		t.Errorf("expected 2 turns, got %d", out.Turns)
	}
}

func TestClaudeRunCycle_MissingResultEvent(t *testing.T) {
	bin := writeFakeClaude(t, `
cat <<'EOF'
{"type":"assistant","message":{"content":[{"type":"text","text":"hello"}]}}
EOF
`)
	a := NewClaudeAdapter(bin)

	if _, err := a.RunCycle(context.Background(), CycleInput{Model: "m", MaxTurns: 30}); err == nil {
		t.Fatal("expected an error when the stream ends without a result event")
	}
}

func TestClaudeRunCycle_NonzeroExit(t *testing.T) {
	bin := writeFakeClaude(t, `
echo "fatal: bad credentials" >&2
exit 1
`)
	a := NewClaudeAdapter(bin)

	_, err := a.RunCycle(context.Background(), CycleInput{Model: "m", MaxTurns: 30})
	if err == nil {
		t.Fatal("expected an error from a nonzero exit")
	}
	if !strings.Contains(err.Error(), "bad credentials") {
		t.Errorf("expected stderr excerpt in error, got: %v", err)
	}
}

func TestClaudeRunCycle_BinaryNotFound(t *testing.T) {
	a := NewClaudeAdapter(filepath.Join(t.TempDir(), "no-such-binary"))

	_, err := a.RunCycle(context.Background(), CycleInput{Model: "m", MaxTurns: 30})
	if err == nil {
		t.Fatal("expected an error when the CLI binary is missing")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected a not-found error, got: %v", err)
	}
}

func TestClaudeRunCycle_PassesPromptArguments(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args.txt")
	bin := filepath.Join(dir, "claude")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > " + argsFile + `
cat <<'EOF'
{"type":"result","total_cost_usd":0,"num_turns":1,"is_error":false}
EOF
`
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake claude: %v", err)
	}
	a := NewClaudeAdapter(bin)

	_, err := a.RunCycle(context.Background(), CycleInput{
		SystemPrompt: "system instructions",
		UserPrompt:   "user prompt here",
		Model:        "claude-haiku-4-5-20251001",
		MaxTurns:     30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read args: %v", err)
	}
	got := string(raw)
	for _, want := range []string{
		"--output-format", "stream-json",
		"--model", "claude-haiku-4-5-20251001",
		"--max-turns", "30",
		"--allowedTools", "Bash",
		"system instructions",
		"user prompt here",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected argument %q, got args:\n%s", want, got)
		}
	}
}
