// kbgen/cmd/kbgen/watch.go

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"rgehrsitz/kbgen/pkg/karabiner"
	"rgehrsitz/kbgen/pkg/logging"
	"rgehrsitz/kbgen/pkg/store"
)

func (a *app) newWatchCmd() *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Write the stored document out every time an update is published",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), once)
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "Exit after the first applied update")
	return cmd
}

func (a *app) watch(ctx context.Context, once bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	pubsub, err := st.Subscribe(ctx, a.cfg.RedisChannel)
	if err != nil {
		return err
	}
	defer pubsub.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	logger := logging.Component("watch")
	logger.Info().Str("channel", a.cfg.RedisChannel).Msg("Watching for rule set updates")

	msgs := pubsub.Channel()
	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := a.applyUpdate(ctx, st, msg); err != nil {
				logging.LogError(logger, err)
				continue
			}
			if once {
				return nil
			}
		case <-sigChan:
			logger.Info().Msg("Stopping watch")
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

// applyUpdate loads the document an update announces and writes it out if
// its digest matches the announcement.
func (a *app) applyUpdate(ctx context.Context, st store.Store, msg *redis.Message) error {
	update, err := store.DecodeUpdate(msg)
	if err != nil {
		return logging.NewError(logging.ErrorTypeStore, "invalid update payload", err,
			map[string]interface{}{"channel": msg.Channel})
	}

	doc, _, err := st.LoadDocument(ctx, update.Key)
	if err != nil {
		return logging.NewError(logging.ErrorTypeStore, "failed to load announced document", err,
			map[string]interface{}{"key": update.Key, "id": update.ID})
	}
	if got := karabiner.Digest(doc); got != update.Digest {
		return logging.NewError(logging.ErrorTypeStore, "document digest mismatch", nil,
			map[string]interface{}{"key": update.Key, "want": update.Digest, "got": got})
	}

	logging.Logger.Info().Str("id", update.ID).Str("digest", update.Digest).Int("rules", update.Rules).Msg("Applying rule set update")
	return a.deps.Writer.Write(a.cfg.OutputPath, doc)
}
