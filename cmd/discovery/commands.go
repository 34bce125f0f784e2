package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"activity_discovery/internal/domain"
)

func newResetDeclinedCmd(configPath *string) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "reset-declined",
		Short: "Erase the user's dislikes so declined activities show up again",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			b, err := buildBackend(cmd.Context(), cfg, logger)
			if err != nil {
				logger.Error("failed to build backend", "error", err)
				return err
			}
			defer b.Close()

			if err := b.resetter.ResetDeclined(cmd.Context(), domain.UserID(userID)); err != nil {
				logger.Error("reset declined failed", "user_id", userID, "error", err)
				return err
			}
			logger.Info("declined activities reset", "user_id", userID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "user id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newRadiusCmd(configPath *string) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "radius",
		Short: "Show or change the user's search radius",
	}
	cmd.PersistentFlags().Int64Var(&userID, "user", 0, "user id")
	_ = cmd.MarkPersistentFlagRequired("user")

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the search radius in kilometers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			b, err := buildBackend(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer b.Close()
			if b.radius == nil {
				return errNoSettingsStore
			}

			km, err := b.radius.Radius(cmd.Context(), domain.UserID(userID))
			if err != nil {
				return fmt.Errorf("get radius: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), km)
			return err
		},
	}

	set := &cobra.Command{
		Use:   "set KM",
		Short: "Set the search radius; empty means 1, above 3500 is capped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := domain.ParseRadius(args[0])
			if err != nil {
				return err
			}

			cfg, logger, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			b, err := buildBackend(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer b.Close()
			if b.radius == nil {
				return errNoSettingsStore
			}

			if err := b.radius.SetRadius(cmd.Context(), domain.UserID(userID), km); err != nil {
				return fmt.Errorf("set radius: %w", err)
			}
			logger.Info("radius updated", "user_id", userID, "radius_km", km)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.Itoa(km))
			return err
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}

func newLikedCmd(configPath *string) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "liked",
		Short: "List the activities the user liked, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			b, err := buildBackend(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer b.Close()
			if b.swipes == nil {
				return errNoSwipeStore
			}

			ids, err := b.swipes.Liked(cmd.Context(), domain.UserID(userID))
			if err != nil {
				return fmt.Errorf("list liked: %w", err)
			}
			for _, id := range ids {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), int64(id)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "user id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
