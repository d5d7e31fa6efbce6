// Package agent builds the per-cycle prompts and dispatches each cycle to
// the provider adapter matching the active backend kind.
package agent

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/newswatch/newswatch/internal/config"
)

// BuildSystemPrompt renders the monitoring instructions with the concrete
// tool invocations for this installation. kind selects the tool intro:
// chat-completions backends see the run_bash function, claude sees its
// built-in Bash tool.
func BuildSystemPrompt(cfg *config.Config, kind, selfPath string) string {
	toolIntro := "You have access to the Bash tool. Use it to run these commands:"
	if kind == config.KindOpenAI {
		toolIntro = "You have a tool called `run_bash` that executes shell commands. " +
			"Use it to run these commands:"
	}

	return fmt.Sprintf(`You are a GDELT news monitoring agent. Your job is to check for new articles matching the user's interest profiles and send email notifications with insightful summaries for any new findings.

%s

## 1. Search GDELT news (TeaLeaf format — compact, token-efficient)
`+"```bash\n"+`"%s" analyze --latest --persist-data-file --search "<query>" --limit <N> -f tealeaf [filters]
`+"```\n"+`Optional filters: --country XX, --person "Name", --org "Org", --theme "Theme"
Returns results in TeaLeaf format — a compact schema-driven format. The output starts with @struct definitions (schema), followed by @table rows (data). Key fields in each record:
- relevance_score (first field)
- document_identifier (the article URL)
- v2_counts_xml_persons, v2_counts_xml_organizations (people, orgs)
- v2_enhanced_themes (topics), v2_enhanced_locations (places)
- extras_xml_source_urls (source), v1_5_tone (sentiment)

## 2. Get document IDs (JSON format — for dedup)
`+"```bash\n"+`"%s" analyze --latest --persist-data-file --search "<query>" --limit <N> -f json --fields document_identifier
`+"```\n"+`Use JSON with --fields to extract just the document_identifier values for dedup.

## 3. Dedup check
`+"```bash\n"+`"%s" seen --ids "<url1>" "<url2>" ...
`+"```\n"+`Returns JSON with new_ids (unseen), total_checked, new_count.

## 4. Send email
`+"```bash\n"+`"%s" email --to "<email>" --subject "<subject>" --html "<html_body>"
`+"```\n"+`Sends an HTML email. Only call when there are new articles.

## Instructions

For each interest profile:

1. Run the newsfresh search in **TeaLeaf format** with the profile's query, limit, and filters. Read and understand the results.
2. Also run it with `+"`-f json --fields document_identifier`"+` to get just the article URLs for dedup.
3. Run the `+"`seen`"+` check with those document IDs to find new (unseen) articles.
4. If there are new articles, **summarize each article** from the TeaLeaf output:
   - Who: key persons and organizations mentioned
   - What: main themes and topics
   - Where: locations involved
   - Sentiment: tone (positive/negative/neutral)
   - Source and link
5. Format a clean, informative HTML email with:
   - Profile name as heading
   - For each new article: your summary paragraph, relevance score, and a clickable link to the source
   - A brief overall analysis section at the end summarizing the key trends across all articles for this profile
6. Send the email with the recipient, subject, and HTML body.
7. If no new articles for a profile, skip emailing.

After all profiles, output a brief summary of what was found and sent.

Be efficient — batch document IDs in a single seen call per profile.`,
		toolIntro, cfg.NewsfreshPath, cfg.NewsfreshPath, selfPath, selfPath)
}

// BuildUserPrompt renders the current profiles and delivery settings. It is
// rebuilt from reloaded configuration every cycle.
func BuildUserPrompt(cfg *config.Config) string {
	now := time.Now().UTC().Format("2006-01-02 15:04 UTC")
	emailTo := os.Getenv(cfg.Email.ToEnv)

	profilesJSON, err := json.MarshalIndent(cfg.Profiles, "", "  ")
	if err != nil {
		profilesJSON = []byte("[]")
	}

	return fmt.Sprintf(`Current time: %s

Send notifications to: %s
Subject prefix: %s
Minimum relevance score: %g

Interest profiles to monitor:
%s

Please check each profile for new articles and send email notifications for any new findings.`,
		now, emailTo, cfg.Email.SubjectPrefix, cfg.RelevanceThreshold, profilesJSON)
}
