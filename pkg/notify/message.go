package notify

import (
	"fmt"

	goslack "github.com/slack-go/slack"

	"github.com/fleetsense/fleetsense/ent"
)

// buildReviewBlocks renders a human-review alert as Block Kit blocks:
// a header, the flagged routing decision as fields, and the review id
// operators resolve against.
func buildReviewBlocks(review *ent.HumanReview, threshold float64) []goslack.Block {
	header := goslack.NewHeaderBlock(
		goslack.NewTextBlockObject(goslack.PlainTextType, ":warning: Human review required", true, false))

	fields := []*goslack.TextBlockObject{
		goslack.NewTextBlockObject(goslack.MarkdownType,
			fmt.Sprintf("*Case:*\n%s", review.CaseID), false, false),
		goslack.NewTextBlockObject(goslack.MarkdownType,
			fmt.Sprintf("*Stage:*\n%s", review.Stage), false, false),
		goslack.NewTextBlockObject(goslack.MarkdownType,
			fmt.Sprintf("*Confidence:*\n%.2f (threshold %.2f)", review.Confidence, threshold), false, false),
		goslack.NewTextBlockObject(goslack.MarkdownType,
			fmt.Sprintf("*Review:*\n%s", review.ID), false, false),
	}
	details := goslack.NewSectionBlock(nil, fields, nil)

	footer := goslack.NewContextBlock("",
		goslack.NewTextBlockObject(goslack.MarkdownType,
			"Routing is paused for this case until the review is resolved.", false, false))

	return []goslack.Block{header, details, footer}
}
