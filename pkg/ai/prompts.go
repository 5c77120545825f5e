package ai

import (
	"fmt"
	"strings"
)

// systemPrompt pins the structure the provider must follow when writing
// Minutes of Meeting. The rules mirror the institutional template: agenda,
// elaborated discussion points, and the caller's concluding statement,
// with no action-items section.
const systemPrompt = `You are an AI assistant generating Minutes of Meeting (MoM) for academic documentation. Follow this exact structure and formatting logic:

STRUCTURE RULES
- Do NOT include: chairperson name, convener name, or "Prepared by" section.
- Do NOT include: Action Items or any sections below it.
- DO include: Agenda, followed by elaborated Discussion Points and Decisions.
- DO end every MoM with the fixed concluding statement provided by the user.

OUTPUT FORMAT
1. Minutes of Meeting
   Begin with: "The meeting commenced under the chairmanship of the Head of Department to discuss..." followed by the agenda topic.
2. Key points discussed:
   For each point provided:
   - Do NOT add new ideas.
   - Elaborate using formal academic phrasing.
   - Maintain clarity, neutrality, and modularity.
3. Conclusion:
   End with the exact statement provided by the user (mandatory).

STYLE
- Use bullet points for discussion.
- Bold section headers only.
- No placeholders, no extra commentary.
- No Action Items section.`

// BuildMOMPrompt assembles the user prompt from already-parsed meeting
// input. Discussion points arrive pre-stripped of bullet markers; the
// caller owns that parsing so both generation paths share it.
func BuildMOMPrompt(agendaItems, discussionPoints []string, closingStatement string) string {
	var agenda strings.Builder
	for i, item := range agendaItems {
		fmt.Fprintf(&agenda, "%d. %s\n", i+1, item)
	}

	var points strings.Builder
	for i, p := range discussionPoints {
		fmt.Fprintf(&points, "%d. %s\n", i+1, p)
	}

	return fmt.Sprintf(`Generate Minutes of Meeting for:

Agenda:
%s
Discussion Points to Elaborate (DO NOT add new ideas, only elaborate these):
%s
Concluding Statement (use exactly as provided):
%q

Generate the complete Minutes of Meeting following the structure rules.`,
		agenda.String(), points.String(), closingStatement)
}
