package agent

import (
	"strings"
	"testing"

	"github.com/newswatch/newswatch/internal/config"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.NewsfreshPath = "/opt/bin/newsfresh"
	cfg.Profiles = []config.Profile{
		{Name: "AI policy", Query: "artificial intelligence regulation", Limit: 20},
	}
	return &cfg
}

func TestBuildSystemPrompt_ClaudeKind(t *testing.T) {
	got := BuildSystemPrompt(testConfig(), config.KindClaude, "/usr/local/bin/newswatch")

	if !strings.Contains(got, "Bash tool") {
		t.Error("expected the Bash tool intro for the claude backend")
	}
	if strings.Contains(got, "run_bash") {
		t.Error("did not expect the run_bash intro for the claude backend")
	}
}

func TestBuildSystemPrompt_OpenAIKind(t *testing.T) {
	got := BuildSystemPrompt(testConfig(), config.KindOpenAI, "/usr/local/bin/newswatch")

	if !strings.Contains(got, "run_bash") {
		t.Error("expected the run_bash intro for the chat-completions backend")
	}
}

func TestBuildSystemPrompt_EmbedsCommandPaths(t *testing.T) {
	got := BuildSystemPrompt(testConfig(), config.KindClaude, "/usr/local/bin/newswatch")

	for _, want := range []string{
		`"/opt/bin/newsfresh" analyze --latest --persist-data-file`,
		`"/usr/local/bin/newswatch" seen --ids`,
		`"/usr/local/bin/newswatch" email --to`,
		"-f tealeaf",
		"--fields document_identifier",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}

func TestBuildUserPrompt(t *testing.T) {
	cfg := testConfig()
	cfg.RelevanceThreshold = 2.5
	t.Setenv(cfg.Email.ToEnv, "reader@example.com")

	got := BuildUserPrompt(cfg)

	for _, want := range []string{
		"reader@example.com",
		cfg.Email.SubjectPrefix,
		"2.5",
		"AI policy",
		"artificial intelligence regulation",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected user prompt to contain %q", want)
		}
	}
}
