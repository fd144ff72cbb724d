package improve

import (
	"strings"

	"github.com/autoforge-dev/autoforge/ent"
)

// ApplyChange merges an accepted proposal into the current prompt text.
// When the proposal targets an existing passage that is still present,
// the passage is replaced in place. Otherwise the proposed text is
// appended under the proposal's section heading.
func ApplyChange(current string, p *ent.PromptProposal) string {
	if p.OriginalText != "" && strings.Contains(current, p.OriginalText) {
		return strings.Replace(current, p.OriginalText, p.ProposedText, 1)
	}

	section := p.SectionName
	if section == "" {
		section = "General Guidance"
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(current, "\n"))
	if b.Len() > 0 {
		b.WriteString("\n\n")
	}
	b.WriteString("## ")
	b.WriteString(section)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(p.ProposedText))
	b.WriteString("\n")
	return b.String()
}
