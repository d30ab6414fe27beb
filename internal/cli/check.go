package cli

import (
	"github.com/spf13/cobra"

	"github.com/mhollis/dealscout/internal/config"
	"github.com/mhollis/dealscout/internal/deals"
	"github.com/mhollis/dealscout/internal/display"
	"github.com/mhollis/dealscout/internal/itad"
	"github.com/mhollis/dealscout/internal/notify"
	"github.com/mhollis/dealscout/internal/steam"
	"github.com/mhollis/dealscout/pkg/logger"
)

func newCheckCommand() *cobra.Command {
	var (
		sortBy     string
		sendNotify bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Find which wishlisted games are on sale right now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, sortBy, sendNotify)
		},
	}

	cmd.Flags().StringVarP(&sortBy, "sort", "s", "deal", "sort order: deal, discount or price")
	cmd.Flags().BoolVar(&sendNotify, "notify", false, "send the strongest deals to telegram")

	return cmd
}

func runCheck(cmd *cobra.Command, sortBy string, sendNotify bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateCheck(); err != nil {
		return err
	}

	l := logger.New(cfg.LogLevel)

	inventory := steam.NewClient(cfg.SteamAPIKey, cfg.SteamID, l)
	market := itad.NewClient(cfg.ITADKey, cfg.ITADShopID, cfg.Country, l)

	pipeline := deals.New(inventory, market, market, l)
	strategy := deals.ParseStrategy(sortBy)

	outcome, err := pipeline.Run(cmd.Context(), strategy)
	if err != nil {
		return err
	}
	if outcome.Reason != deals.ReasonNone {
		l.Infof("No results: %s", outcome.Reason)
		return nil
	}

	display.Render(cmd.OutOrStdout(), outcome.Results, strategy, cfg.Country)

	if sendNotify {
		if !cfg.TelegramEnabled() {
			l.Warn("Notify requested but TELEGRAM_TOKEN/TELEGRAM_CHAT_ID are not set")
			return nil
		}
		notifier, err := notify.New(cfg.TelegramToken, cfg.TelegramChatID, l)
		if err != nil {
			return err
		}
		return notifier.SendDeals(outcome.Results, cfg.Country)
	}

	return nil
}
