package improve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autoforge-dev/autoforge/ent"
)

func TestApplyChangeReplacesInPlace(t *testing.T) {
	current := "# Coding\n\nRun the tests.\nCommit your work.\n"
	p := &ent.PromptProposal{
		SectionName:  "Testing",
		OriginalText: "Run the tests.",
		ProposedText: "Run the tests and fix failures before moving on.",
	}

	got := ApplyChange(current, p)
	assert.Contains(t, got, "Run the tests and fix failures before moving on.")
	assert.NotContains(t, got, "Run the tests.\nCommit")
	assert.NotContains(t, got, "## Testing")
}

func TestApplyChangeAppendsSectionWhenOriginalMissing(t *testing.T) {
	current := "# Coding\n\nDo the work.\n"
	p := &ent.PromptProposal{
		SectionName:  "Browser Verification",
		OriginalText: "some passage that was edited away",
		ProposedText: "Open the page after every UI change.",
	}

	got := ApplyChange(current, p)
	assert.Contains(t, got, "# Coding\n\nDo the work.")
	assert.Contains(t, got, "## Browser Verification\n\nOpen the page after every UI change.\n")
}

func TestApplyChangeDefaultsSectionName(t *testing.T) {
	p := &ent.PromptProposal{ProposedText: "Be thorough."}
	got := ApplyChange("", p)
	assert.Equal(t, "## General Guidance\n\nBe thorough.\n", got)
}
