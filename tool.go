package main

import (
	"fmt"
	"strconv"

	"socialmedia/internal/service"

	"github.com/spf13/cobra"
)

// newMessagesCmd is the moderation tool: dump every message, or delete by id.
func newMessagesCmd() *cobra.Command {
	messagesCmd := &cobra.Command{
		Use:   "messages",
		Short: "Inspect and moderate stored messages",
	}
	messagesCmd.AddCommand(newMessagesListCmd(), newMessagesDeleteCmd())
	return messagesCmd
}

func newMessagesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print every message as id,posted_by,text,time_posted_epoch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			messages, cleanup, err := openMessageService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			msgs, err := messages.GetAllMessages(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range msgs {
				fmt.Fprintf(out, "%d,%d,%s,%d\n", m.MessageID, m.PostedBy, m.MessageText, m.TimePostedEpoch)
			}
			return nil
		},
	}
}

func newMessagesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <message_id>...",
		Short: "Delete messages by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, cleanup, err := openMessageService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					fmt.Fprintf(errOut, "Invalid message ID: %s\n", arg)
					continue
				}
				deleted, err := messages.DeleteMessage(cmd.Context(), id)
				switch {
				case err != nil:
					fmt.Fprintf(errOut, "SQL error: %s\n", err)
				case deleted == nil:
					fmt.Fprintf(out, "No message: %d\n", id)
				default:
					fmt.Fprintf(out, "Deleted message: %d\n", id)
				}
			}
			return nil
		},
	}
}

// openMessageService opens the configured database for a one-shot command.
// The tool is quiet: it logs only errors.
func openMessageService(cmd *cobra.Command) (*service.MessageService, func(), error) {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return nil, nil, err
	}
	cfg.Log.Level = "error"
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	db, err := openDB(cmd.Context(), cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	a, err := newApp(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return a.messages, func() { _ = db.Close() }, nil
}
