// Package notify posts run summaries to Slack when configured.
package notify

import (
	"fmt"

	"github.com/slack-go/slack"

	"autoready/internal/config"
	"autoready/internal/domain"
)

// PostRunSummary sends a short completion message with the report path to
// the configured channel. It is a no-op when Slack is not configured.
func PostRunSummary(cfg config.Config, table domain.FeatureTable, reportPath string) error {
	if cfg.SlackBotToken == "" || cfg.ReportChannelID == "" {
		return nil
	}

	api := slack.New(cfg.SlackBotToken)
	msg := fmt.Sprintf(
		"Automation-readiness analysis complete: %d department(s) analyzed. Report: %s",
		len(table), reportPath,
	)
	_, _, err := api.PostMessage(cfg.ReportChannelID, slack.MsgOptionText(msg, false))
	return err
}
